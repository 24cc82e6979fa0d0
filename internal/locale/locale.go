package locale

// Supported display locales. English is the base; Thai falls back to
// English for missing keys. Filtering always runs on raw English values —
// localized strings are display-only.
const (
	EN = "en"
	TH = "th"
)

// messages holds the UI strings for filter labels, property types and
// locations, keyed by locale then message key.
var messages = map[string]map[string]string{
	EN: {
		"properties.title":       "Properties",
		"properties.available":   "Available",
		"properties.filters":     "Filters",
		"properties.location":    "Location",
		"properties.type":        "Property Type",
		"properties.bedrooms":    "Bedrooms",
		"properties.priceRange":  "Price Range",
		"properties.anyBeds":     "Any",
		"properties.anyPrice":    "Any Price",
		"properties.under":       "Under",
		"properties.over":        "Over",
		"properties.clearAll":    "Clear all",
		"properties.noResults":   "No properties found matching your search.",
		"properties.perMonth":    "/month",
		"types.house":            "House",
		"types.condo":            "Condo",
		"types.villa":            "Villa",
		"types.apartment":        "Apartment",
		"types.all":              "All Types",
		"locations.all":          "All Locations",
		"locations.bangkok":      "Bangkok Central",
		"locations.pattaya":      "Pattaya Beach",
		"locations.chiangmai":    "Chiang Mai",
		"locations.downtown":     "Downtown Metropolis",
		"wishlist.empty":         "Your wishlist is empty",
		"wishlist.startAdding":   "Start adding properties you love to your wishlist",
	},
	TH: {
		"properties.title":       "อสังหาริมทรัพย์",
		"properties.available":   "พร้อมให้เช่า",
		"properties.filters":     "ตัวกรอง",
		"properties.location":    "ทำเล",
		"properties.type":        "ประเภทอสังหาริมทรัพย์",
		"properties.bedrooms":    "ห้องนอน",
		"properties.priceRange":  "ช่วงราคา",
		"properties.anyBeds":     "ไม่จำกัด",
		"properties.anyPrice":    "ทุกช่วงราคา",
		"properties.under":       "ต่ำกว่า",
		"properties.over":        "มากกว่า",
		"properties.clearAll":    "ล้างทั้งหมด",
		"properties.noResults":   "ไม่พบอสังหาริมทรัพย์ที่ตรงกับการค้นหา",
		"properties.perMonth":    "/เดือน",
		"types.house":            "บ้านเดี่ยว",
		"types.condo":            "คอนโด",
		"types.villa":            "วิลล่า",
		"types.apartment":        "อพาร์ตเมนต์",
		"types.all":              "ทุกประเภท",
		"locations.all":          "ทุกทำเล",
		"locations.bangkok":      "กรุงเทพฯ ใจกลางเมือง",
		"locations.pattaya":      "หาดพัทยา",
		"locations.chiangmai":    "เชียงใหม่",
		"locations.downtown":     "ใจกลางมหานคร",
		"wishlist.empty":         "รายการโปรดของคุณว่างเปล่า",
		"wishlist.startAdding":   "เริ่มเพิ่มอสังหาริมทรัพย์ที่คุณชอบลงในรายการโปรด",
	},
}

// Lookup returns the message for the key in the given locale, falling back
// to English, then to the key itself.
func Lookup(loc, key string) string {
	if m, ok := messages[loc]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := messages[EN][key]; ok {
		return v
	}
	return key
}

// Messages returns the full message table for a locale (English when the
// locale is unknown).
func Messages(loc string) map[string]string {
	if m, ok := messages[loc]; ok {
		return m
	}
	return messages[EN]
}
