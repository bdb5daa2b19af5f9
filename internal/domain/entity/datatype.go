package entity

// DataType names one cacheable domain collection. Cache keys are built as
// "<namespace>_<dataType>", mirroring the key scheme the web client used
// before the backend took over namespacing.
type DataType string

const (
	DataGuests     DataType = "guests"
	DataBudget     DataType = "budget"
	DataTodos      DataType = "todos"
	DataRegistries DataType = "registries"
	DataVendors    DataType = "vendors"
	DataSeating    DataType = "seating"
	DataOnboarding DataType = "onboarding"
)

// AllDataTypes lists every collection subject to caching, purging, and legacy
// key migration. Order is not significant.
var AllDataTypes = []DataType{
	DataGuests,
	DataBudget,
	DataTodos,
	DataRegistries,
	DataVendors,
	DataSeating,
	DataOnboarding,
}

// String returns the string representation of the DataType.
func (d DataType) String() string {
	return string(d)
}

// IsValid checks if the DataType is a known collection name.
func (d DataType) IsValid() bool {
	for _, t := range AllDataTypes {
		if d == t {
			return true
		}
	}

	return false
}
