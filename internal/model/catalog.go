package model

// CatalogKind selects one of the three controlled-vocabulary lists.
type CatalogKind string

const (
	CatalogProductType CatalogKind = "type"
	CatalogSupplier    CatalogKind = "supplier"
	CatalogPlatform    CatalogKind = "platform"
)

// CatalogKinds lists every kind in display order.
var CatalogKinds = []CatalogKind{CatalogProductType, CatalogSupplier, CatalogPlatform}

// Default lists used until the store holds a value for the kind.
var (
	DefaultProductTypes = []string{"T-Shirt", "Jeans", "Dress", "Jacket"}
	DefaultSuppliers    = []string{"Supplier A", "Supplier B", "Supplier C"}
	DefaultPlatforms    = []string{"Physical Store", "Website", "WhatsApp", "Instagram"}
)

func (k CatalogKind) Valid() bool {
	switch k {
	case CatalogProductType, CatalogSupplier, CatalogPlatform:
		return true
	}
	return false
}

// Defaults returns a fresh copy of the seed list for k.
func (k CatalogKind) Defaults() []string {
	var src []string
	switch k {
	case CatalogProductType:
		src = DefaultProductTypes
	case CatalogSupplier:
		src = DefaultSuppliers
	case CatalogPlatform:
		src = DefaultPlatforms
	}
	return append([]string{}, src...)
}
