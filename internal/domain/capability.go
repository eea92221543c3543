package domain

// Role identifies which principal a capability acts as.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCompany  Role = "company"
	RoleCustomer Role = "customer"
)

// Capability is the role-scoped identity issued at login. The scope id is
// set once at issuance and never changes for the life of the session.
type Capability struct {
	Role       Role `json:"role"`
	CompanyID  uint `json:"companyId,omitempty"`
	CustomerID uint `json:"customerId,omitempty"`
}

func AdminCapability() Capability {
	return Capability{Role: RoleAdmin}
}

func CompanyCapability(companyID uint) Capability {
	return Capability{Role: RoleCompany, CompanyID: companyID}
}

func CustomerCapability(customerID uint) Capability {
	return Capability{Role: RoleCustomer, CustomerID: customerID}
}
