package tips

import "time"

// Tip is a single thank-you payment to a branch team.
type Tip struct {
	Amount     int       `json:"amount"`
	BranchName string    `json:"branch"`
	CreatedAt  time.Time `json:"created_at"`
}

// Stats is the aggregate shown on the support section of the site.
type Stats struct {
	TotalAmount   int   `json:"total_amount"`
	TotalPeople   int   `json:"total_people"`
	TotalBranches int   `json:"total_branches"`
	RecentTips    []Tip `json:"recent_tips"`
}

const RecentLimit = 3
