package domain

// MemberType is reference data: seeded at startup, never created or deleted
// at runtime. Only discount and monthPostsLimit can change.
type MemberType struct {
	ID              string `json:"id"`
	Discount        int    `json:"discount"`
	MonthPostsLimit int    `json:"monthPostsLimit"`
}

// DefaultMemberTypes returns the member types seeded at process start.
func DefaultMemberTypes() []MemberType {
	return []MemberType{
		{ID: "basic", Discount: 0, MonthPostsLimit: 20},
		{ID: "business", Discount: 5, MonthPostsLimit: 100},
	}
}
