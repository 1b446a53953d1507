package domain

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Expense   AccountCategory = "EXPENSE"
)

// Dimension names a dimensional tag a journal line may carry.
type Dimension string

const (
	DimensionLegalEntity Dimension = "legalEntityId"
	DimensionDepartment  Dimension = "departmentId"
	DimensionProject     Dimension = "projectId"
	DimensionFund        Dimension = "fundId"
)

// Account is the catalog snapshot of a GL account as the governance kernel sees it.
// Only the posting flags and dimension requirements matter for a decision.
type Account struct {
	AccountID           string          `json:"accountID"`
	TenantID            string          `json:"tenantID"`
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Category            AccountCategory `json:"category"`
	IsPostingAllowed    bool            `json:"isPostingAllowed"`
	IsFrozen            bool            `json:"isFrozen"`
	IsControlAccount    bool            `json:"isControlAccount"` // subledger balancing point (AR/AP control)
	RequiresLegalEntity bool            `json:"requiresLegalEntity"`
	RequiresDepartment  bool            `json:"requiresDepartment"`
	RequiresProject     bool            `json:"requiresProject"`
	RequiresFund        bool            `json:"requiresFund"`
}

// RequiredDimensions lists the dimensions the account demands, in a stable order.
func (a Account) RequiredDimensions() []Dimension {
	dims := make([]Dimension, 0, 4)
	if a.RequiresLegalEntity {
		dims = append(dims, DimensionLegalEntity)
	}
	if a.RequiresDepartment {
		dims = append(dims, DimensionDepartment)
	}
	if a.RequiresProject {
		dims = append(dims, DimensionProject)
	}
	if a.RequiresFund {
		dims = append(dims, DimensionFund)
	}
	return dims
}
