package domain

// ShopScope is a tagged variant selecting either a single shop or the
// superadmin "all shops" aggregate view. The two branch points that care
// about the distinction are the opening-balance baseline lookup and the
// transaction query filter.
type ShopScope struct {
	shopID string
	all    bool
}

// SingleShop scopes to one shop id.
func SingleShop(shopID string) ShopScope {
	return ShopScope{shopID: shopID}
}

// AllShops is the cross-tenant aggregate scope.
func AllShops() ShopScope {
	return ShopScope{all: true}
}

// IsAll reports whether the scope spans every shop.
func (s ShopScope) IsAll() bool {
	return s.all
}

// ShopID returns the scoped shop id and whether one applies. The boolean is
// false for the all-shops scope.
func (s ShopScope) ShopID() (string, bool) {
	if s.all {
		return "", false
	}
	return s.shopID, true
}

// String is used for logging and report metadata.
func (s ShopScope) String() string {
	if s.all {
		return "all"
	}
	return s.shopID
}
