// Package vocabulary holds the compiled-in category and modifier word lists
// used to assemble 3D object names. The lists are fixed at build time and
// never mutated; the Registry only enumerates them.
package vocabulary

// Category identifies one domain vocabulary of base nouns.
type Category string

const (
	CategoryFurniture   Category = "furniture"
	CategoryVehicles    Category = "vehicles"
	CategoryKitchen     Category = "kitchen"
	CategoryTools       Category = "tools"
	CategoryElectronics Category = "electronics"
	CategoryHousehold   Category = "household"
)

// ModifierClass identifies one qualifier vocabulary combinable with base nouns.
type ModifierClass string

const (
	ModifierMaterials ModifierClass = "materials"
	ModifierSizes     ModifierClass = "sizes"
	ModifierStyles    ModifierClass = "styles"
	ModifierColors    ModifierClass = "colors"
)

// DefaultCategoryOrder is the order categories are walked when combining.
// Fixed so that prefix-limited modifier crossing is deterministic.
var DefaultCategoryOrder = []Category{
	CategoryFurniture,
	CategoryVehicles,
	CategoryKitchen,
	CategoryTools,
	CategoryElectronics,
	CategoryHousehold,
}

var furniture = []string{
	"chair", "table", "sofa", "bed", "desk", "shelf", "cabinet", "bench",
	"stool", "armchair", "recliner", "loveseat", "ottoman", "bookcase",
	"dresser", "nightstand", "wardrobe", "credenza", "hutch", "vanity",
}

var vehicles = []string{
	"car", "truck", "bus", "motorcycle", "bicycle", "airplane", "boat",
	"helicopter", "ship", "train", "scooter", "van", "ambulance", "taxi",
	"jet", "sailboat", "yacht", "canoe", "kayak", "submarine",
}

var kitchen = []string{
	"cup", "mug", "bowl", "plate", "glass", "bottle", "pot", "pan",
	"knife", "fork", "spoon", "kettle", "toaster", "blender", "oven",
	"microwave", "refrigerator", "dishwasher", "mixer", "grater",
}

var tools = []string{
	"hammer", "screwdriver", "wrench", "drill", "saw", "scissors",
	"pliers", "ladder", "shovel", "rake", "axe", "chisel", "file",
	"clamp", "vise", "level", "ruler", "square", "crowbar",
}

var electronics = []string{
	"computer", "phone", "camera", "television", "radio", "speaker",
	"monitor", "keyboard", "mouse", "tablet", "laptop", "printer",
	"scanner", "projector", "headphones", "microphone",
}

var household = []string{
	"lamp", "clock", "mirror", "vase", "pillow", "towel", "blanket",
	"candle", "basket", "bucket", "box", "bag", "suitcase", "umbrella",
	"vacuum", "broom", "mop", "iron", "fan", "heater",
}

var materials = []string{
	"wooden", "metal", "plastic", "glass", "ceramic", "fabric", "leather",
	"rubber", "concrete", "stone", "marble", "granite", "steel", "iron",
	"aluminum", "copper", "brass", "bronze", "titanium", "carbon fiber",
	"fiberglass", "bamboo", "wicker", "rattan", "vinyl", "silicone",
	"porcelain", "crystal", "acrylic", "plywood", "hardwood", "softwood",
	"oak", "pine", "maple", "mahogany", "teak", "cedar", "walnut",
	"chrome", "stainless steel", "cast iron", "wrought iron",
}

var sizes = []string{
	"mini", "small", "medium", "large", "extra large", "giant", "tiny",
	"compact", "full size", "oversized", "pocket", "desktop", "floor",
	"wall mounted", "portable", "handheld", "industrial", "commercial",
	"residential", "professional", "standard", "deluxe", "economy",
}

var styles = []string{
	"modern", "vintage", "antique", "contemporary", "traditional",
	"classic", "retro", "rustic", "industrial", "minimalist",
	"ornate", "baroque", "art deco", "victorian", "colonial",
	"scandinavian", "mediterranean", "asian", "western", "eastern",
	"urban", "rural", "military", "nautical", "aviation",
}

var colors = []string{
	"red", "blue", "green", "yellow", "orange", "purple", "pink",
	"black", "white", "gray", "brown", "tan", "beige", "navy",
	"maroon", "teal", "turquoise", "lime", "olive", "silver", "gold",
}

var categoryNouns = map[Category][]string{
	CategoryFurniture:   furniture,
	CategoryVehicles:    vehicles,
	CategoryKitchen:     kitchen,
	CategoryTools:       tools,
	CategoryElectronics: electronics,
	CategoryHousehold:   household,
}

var classModifiers = map[ModifierClass][]string{
	ModifierMaterials: materials,
	ModifierSizes:     sizes,
	ModifierStyles:    styles,
	ModifierColors:    colors,
}

// Registry enumerates a fixed set of category and modifier vocabularies.
// The zero value is empty; NewRegistry returns the full built-in set.
type Registry struct {
	categories []Category
	nouns      map[Category][]string
	modifiers  map[ModifierClass][]string
}

// NewRegistry returns a registry over every built-in category and
// modifier class.
func NewRegistry() *Registry {
	return &Registry{
		categories: DefaultCategoryOrder,
		nouns:      categoryNouns,
		modifiers:  classModifiers,
	}
}

// NewCustomRegistry builds a registry from caller-supplied vocabularies.
// Category order follows the order of the categories slice. Used by tests
// and by callers that restrict the enabled categories.
func NewCustomRegistry(categories []Category, nouns map[Category][]string, modifiers map[ModifierClass][]string) *Registry {
	return &Registry{categories: categories, nouns: nouns, modifiers: modifiers}
}

// Categories returns the enabled categories in their fixed walk order.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Nouns returns the base nouns of one category. Unknown categories
// return an empty slice.
func (r *Registry) Nouns(c Category) []string {
	src := r.nouns[c]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// AllNouns returns every noun of every enabled category, concatenated in
// walk order. This flat ordering is what prefix-limited modifier crossing
// indexes into.
func (r *Registry) AllNouns() []string {
	var out []string
	for _, c := range r.categories {
		out = append(out, r.nouns[c]...)
	}
	return out
}

// Modifiers returns the qualifiers of one modifier class. Unknown classes
// return an empty slice.
func (r *Registry) Modifiers(class ModifierClass) []string {
	src := r.modifiers[class]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// NounCount returns the total number of base nouns across all enabled
// categories.
func (r *Registry) NounCount() int {
	n := 0
	for _, c := range r.categories {
		n += len(r.nouns[c])
	}
	return n
}
