package entities

// StatusCheckPolicy configures required status checks on a protected branch.
type StatusCheckPolicy struct {
	Strict   bool
	Contexts []string
}

// ReviewPolicy configures required pull request reviews.
type ReviewPolicy struct {
	RequiredApprovingReviewCount int
	DismissStaleReviews          bool
	RequireCodeOwnerReviews      bool
}

// RestrictionPolicy limits who can push to a protected branch.
type RestrictionPolicy struct {
	Users []string
	Teams []string
}

// Protection is the flattened view of a branch protection rule.
type Protection struct {
	StatusChecks  *StatusCheckPolicy
	EnforceAdmins bool
	Reviews       *ReviewPolicy
	Restrictions  *RestrictionPolicy
}

// ProtectionInput holds the fields to update a branch protection rule.
// Nil sub-policies leave the corresponding rule unset.
type ProtectionInput struct {
	StatusChecks     *StatusCheckPolicy
	EnforceAdmins    bool
	Reviews          *ReviewPolicy
	Restrictions     *RestrictionPolicy
	AllowForcePushes bool
	AllowDeletions   bool
}
