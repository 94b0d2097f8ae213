package terraform

import (
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/domain/repositories"
)

const (
	tfSuffix         = ".tf"
	defaultWorkspace = "default"
)

// TerraformDiscoveryRepository finds Terraform root modules in a remote
// repository by reading .tf files through the hosting API, no local clone
// required. A directory counts as a root module when one of its files has a
// terraform block declaring a backend, a cloud block, or required_version.
type TerraformDiscoveryRepository struct {
	files repositories.FileAccessRepository
}

// NewTerraformDiscoveryRepository creates a discovery repository reading
// through the given file access.
func NewTerraformDiscoveryRepository(files repositories.FileAccessRepository) repositories.DiscoveryRepository {
	return &TerraformDiscoveryRepository{files: files}
}

// DiscoverProjects returns one path per root-module directory at ref, with
// the workspace left at "default".
func (r *TerraformDiscoveryRepository) DiscoverProjects(
	ctx context.Context,
	owner, repo, ref string,
) ([]entities.ProjectPath, error) {
	files, err := r.files.ListFiles(ctx, owner, repo, ref, tfSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to list terraform files: %w", err)
	}

	byDir := make(map[string][]string)
	for _, file := range files {
		if file.IsDir {
			continue
		}
		dir := path.Dir(file.Path)
		byDir[dir] = append(byDir[dir], file.Path)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var projects []entities.ProjectPath
	for _, dir := range dirs {
		if !r.dirIsRootModule(ctx, owner, repo, ref, byDir[dir]) {
			continue
		}
		projects = append(projects, entities.ProjectPath{
			Directory: dir,
			Workspace: defaultWorkspace,
		})
	}

	logger.Infof(
		"Discovered %d Terraform root modules in %s/%s@%s",
		len(projects), owner, repo, ref,
	)

	return projects, nil
}

func (r *TerraformDiscoveryRepository) dirIsRootModule(
	ctx context.Context,
	owner, repo, ref string,
	filePaths []string,
) bool {
	for _, filePath := range filePaths {
		content, err := r.files.GetFileContent(ctx, owner, repo, filePath, ref)
		if err != nil {
			logger.Debugf("Skipping unreadable file %q: %v", filePath, err)
			continue
		}
		if isRootModule(content, filePath) {
			return true
		}
	}
	return false
}

// isRootModule parses one .tf file and reports whether its terraform block
// marks the surrounding directory as a root module.
func isRootModule(content, filename string) bool {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(content), filename)
	if diags.HasErrors() {
		return false
	}

	bodyContent, _, _ := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "terraform"},
		},
	})

	for _, block := range bodyContent.Blocks {
		inner, _, _ := block.Body.PartialContent(&hcl.BodySchema{
			Attributes: []hcl.AttributeSchema{
				{Name: "required_version"},
			},
			Blocks: []hcl.BlockHeaderSchema{
				{Type: "backend", LabelNames: []string{"type"}},
				{Type: "cloud"},
			},
		})

		if len(inner.Blocks) > 0 {
			return true
		}

		if attr, ok := inner.Attributes["required_version"]; ok {
			val, valDiags := attr.Expr.Value(&hcl.EvalContext{})
			if !valDiags.HasErrors() && val.Type() == cty.String {
				return true
			}
		}
	}

	return false
}
