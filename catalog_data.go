package main

// plantCatalog is the full static catalog. Order matters: plantsForRegion
// returns entries in definition order, so the strongest anchor species for
// each community are listed first. Wildlife scores, bloom windows and
// indigenous-use notes follow Calscape and the Marin Flora.
var plantCatalog = []PlantRecord{
	{
		ScientificName:       "Quercus agrifolia",
		CommonName:           "Coast Live Oak",
		Communities:          []Region{RegionOakWoodland},
		WildlifeSupportScore: 95,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       40,
		MatureWidthFt:        50,
		GrowthRate:           GrowthSlow,
		LifespanYears:        250,
		FlowerColors:         []string{"yellow-green"},
		BloomMonths:          []int{3, 4},
		IndigenousUses:       []string{"Acorns leached and ground for mush and bread", "Bark used medicinally for toothache"},
		Butterflies:          []Butterfly{{CommonName: "California Sister"}, {CommonName: "Mournful Duskywing"}, {CommonName: "Golden Hairstreak"}},
		Birds:                []Bird{{CommonName: "Acorn Woodpecker"}, {CommonName: "Oak Titmouse"}, {CommonName: "Western Scrub-Jay"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Heteromeles arbutifolia",
		CommonName:           "Toyon",
		Communities:          []Region{RegionChaparral, RegionOakWoodland, RegionCoastalScrub},
		WildlifeSupportScore: 82,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       12,
		MatureWidthFt:        10,
		GrowthRate:           GrowthModerate,
		LifespanYears:        100,
		FlowerColors:         []string{"white"},
		BloomMonths:          []int{6, 7},
		IndigenousUses:       []string{"Berries eaten fresh or dried", "Wood used for tools and arrows"},
		Butterflies:          []Butterfly{{CommonName: "Echo Blue"}, {CommonName: "Pale Swallowtail"}},
		Birds:                []Bird{{CommonName: "Cedar Waxwing"}, {CommonName: "American Robin"}, {CommonName: "Northern Mockingbird"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Frangula californica",
		CommonName:           "Coffeeberry",
		Communities:          []Region{RegionOakWoodland, RegionChaparral, RegionCoastalScrub},
		WildlifeSupportScore: 78,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       8,
		MatureWidthFt:        8,
		GrowthRate:           GrowthModerate,
		LifespanYears:        80,
		FlowerColors:         []string{"greenish-white"},
		BloomMonths:          []int{5, 6},
		IndigenousUses:       []string{"Berries used as a gentle laxative", "Leaves brewed for sores"},
		Butterflies:          []Butterfly{{CommonName: "Pale Swallowtail"}, {CommonName: "Gray Hairstreak"}},
		Birds:                []Bird{{CommonName: "Band-tailed Pigeon"}, {CommonName: "Hermit Thrush"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Baccharis pilularis",
		CommonName:           "Coyote Brush",
		Communities:          []Region{RegionCoastalScrub, RegionChaparral, RegionGrassland},
		WildlifeSupportScore: 74,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       6,
		MatureWidthFt:        8,
		GrowthRate:           GrowthFast,
		LifespanYears:        30,
		FlowerColors:         []string{"cream"},
		BloomMonths:          []int{8, 9, 10},
		IndigenousUses:       []string{"Branches used for arrow shafts and brooms"},
		Butterflies:          []Butterfly{{CommonName: "Field Crescent"}, {CommonName: "Common Buckeye"}},
		Birds:                []Bird{{CommonName: "Bushtit"}, {CommonName: "White-crowned Sparrow"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Diplacus aurantiacus",
		CommonName:           "Sticky Monkeyflower",
		Communities:          []Region{RegionChaparral, RegionCoastalScrub},
		WildlifeSupportScore: 68,
		EvergreenDeciduous:   HabitSemiEvergreen,
		MatureHeightFt:       4,
		MatureWidthFt:        4,
		GrowthRate:           GrowthFast,
		LifespanYears:        15,
		FlowerColors:         []string{"orange"},
		BloomMonths:          []int{4, 5, 6, 7},
		IndigenousUses:       []string{"Leaves poulticed on wounds and burns"},
		Butterflies:          []Butterfly{{CommonName: "Common Buckeye"}, {CommonName: "Variable Checkerspot"}},
		Birds:                []Bird{{CommonName: "Anna's Hummingbird"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Arctostaphylos manzanita",
		CommonName:           "Common Manzanita",
		Communities:          []Region{RegionChaparral},
		WildlifeSupportScore: 76,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       12,
		MatureWidthFt:        10,
		GrowthRate:           GrowthSlow,
		LifespanYears:        100,
		FlowerColors:         []string{"pink", "white"},
		BloomMonths:          []int{1, 2, 3},
		IndigenousUses:       []string{"Berries eaten fresh or made into cider", "Leaves used as a wash for poison oak"},
		Butterflies:          []Butterfly{{CommonName: "Brown Elfin"}, {CommonName: "Spring Azure"}},
		Birds:                []Bird{{CommonName: "Anna's Hummingbird"}, {CommonName: "Fox Sparrow"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Ceanothus thyrsiflorus",
		CommonName:           "Blueblossom",
		Communities:          []Region{RegionChaparral, RegionCoastalScrub},
		WildlifeSupportScore: 80,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       15,
		MatureWidthFt:        12,
		GrowthRate:           GrowthFast,
		LifespanYears:        25,
		FlowerColors:         []string{"blue"},
		BloomMonths:          []int{3, 4, 5},
		IndigenousUses:       []string{"Flowers lathered as soap", "Seeds parched and eaten"},
		Butterflies:          []Butterfly{{CommonName: "California Tortoiseshell"}, {CommonName: "Pale Swallowtail"}, {CommonName: "Echo Blue"}},
		Birds:                []Bird{{CommonName: "Lesser Goldfinch"}, {CommonName: "Wrentit"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Adenostoma fasciculatum",
		CommonName:           "Chamise",
		Communities:          []Region{RegionChaparral},
		WildlifeSupportScore: 55,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       10,
		MatureWidthFt:        8,
		GrowthRate:           GrowthModerate,
		LifespanYears:        100,
		FlowerColors:         []string{"white"},
		BloomMonths:          []int{5, 6},
		IndigenousUses:       []string{"Wood used for arrow foreshafts and fuel", "Scale insect gum used as adhesive"},
		Butterflies:          []Butterfly{{CommonName: "Gray Hairstreak"}},
		Birds:                []Bird{{CommonName: "California Thrasher"}, {CommonName: "Wrentit"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Epilobium canum",
		CommonName:           "California Fuchsia",
		Communities:          []Region{RegionChaparral, RegionCoastalScrub},
		WildlifeSupportScore: 66,
		EvergreenDeciduous:   HabitSemiEvergreen,
		MatureHeightFt:       2,
		MatureWidthFt:        3,
		GrowthRate:           GrowthFast,
		LifespanYears:        10,
		FlowerColors:         []string{"scarlet"},
		BloomMonths:          []int{8, 9, 10},
		IndigenousUses:       []string{"Infusion used as a wash for cuts"},
		Butterflies:          []Butterfly{{CommonName: "White-lined Sphinx"}},
		Birds:                []Bird{{CommonName: "Anna's Hummingbird"}, {CommonName: "Allen's Hummingbird"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Eschscholzia californica",
		CommonName:           "California Poppy",
		Communities:          []Region{RegionGrassland, RegionChaparral},
		WildlifeSupportScore: 62,
		EvergreenDeciduous:   HabitDeciduous,
		MatureHeightFt:       1,
		MatureWidthFt:        1,
		GrowthRate:           GrowthFast,
		LifespanYears:        3,
		FlowerColors:         []string{"orange", "yellow"},
		BloomMonths:          []int{3, 4, 5, 6, 7, 8},
		IndigenousUses:       []string{"Root used as a mild sedative", "Pollen used cosmetically"},
		Butterflies:          []Butterfly{{CommonName: "Acmon Blue"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Lupinus nanus",
		CommonName:           "Sky Lupine",
		Communities:          []Region{RegionGrassland, RegionChaparral},
		WildlifeSupportScore: 64,
		EvergreenDeciduous:   HabitDeciduous,
		MatureHeightFt:       1.5,
		MatureWidthFt:        1,
		GrowthRate:           GrowthFast,
		LifespanYears:        1,
		FlowerColors:         []string{"blue", "white"},
		BloomMonths:          []int{3, 4, 5},
		IndigenousUses:       []string{"Greens steamed as potherb in small amounts"},
		Butterflies:          []Butterfly{{CommonName: "Mission Blue"}, {CommonName: "Orange Sulphur"}, {CommonName: "Painted Lady"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Eriogonum nudum",
		CommonName:           "Naked Buckwheat",
		Communities:          []Region{RegionChaparral, RegionGrassland},
		WildlifeSupportScore: 70,
		EvergreenDeciduous:   HabitSemiEvergreen,
		MatureHeightFt:       3,
		MatureWidthFt:        2,
		GrowthRate:           GrowthModerate,
		LifespanYears:        8,
		FlowerColors:         []string{"white", "pink"},
		BloomMonths:          []int{6, 7, 8, 9},
		IndigenousUses:       []string{"Stems eaten raw", "Tea for headache and stomach ailments"},
		Butterflies:          []Butterfly{{CommonName: "Acmon Blue"}, {CommonName: "Gorgon Copper"}, {CommonName: "Mormon Metalmark"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Artemisia californica",
		CommonName:           "California Sagebrush",
		Communities:          []Region{RegionCoastalScrub, RegionChaparral},
		WildlifeSupportScore: 72,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       5,
		MatureWidthFt:        5,
		GrowthRate:           GrowthFast,
		LifespanYears:        25,
		FlowerColors:         []string{"pale yellow"},
		BloomMonths:          []int{8, 9, 10},
		IndigenousUses:       []string{"Leaves burned for ceremony", "Decoction for colds and rheumatism"},
		Butterflies:          []Butterfly{{CommonName: "Gabb's Checkerspot"}},
		Birds:                []Bird{{CommonName: "California Towhee"}, {CommonName: "Wrentit"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Garrya elliptica",
		CommonName:           "Coast Silktassel",
		Communities:          []Region{RegionCoastalScrub, RegionChaparral},
		WildlifeSupportScore: 58,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       12,
		MatureWidthFt:        10,
		GrowthRate:           GrowthModerate,
		LifespanYears:        50,
		FlowerColors:         []string{"silver-gray"},
		BloomMonths:          []int{12, 1, 2},
		IndigenousUses:       []string{"Bitter bark tea taken as tonic"},
		Butterflies:          []Butterfly{{CommonName: "Sheep Moth"}},
		Birds:                []Bird{{CommonName: "Dark-eyed Junco"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Achillea millefolium",
		CommonName:           "Yarrow",
		Communities:          []Region{RegionGrassland, RegionCoastalScrub},
		WildlifeSupportScore: 60,
		EvergreenDeciduous:   HabitSemiEvergreen,
		MatureHeightFt:       2,
		MatureWidthFt:        2,
		GrowthRate:           GrowthFast,
		LifespanYears:        10,
		FlowerColors:         []string{"white"},
		BloomMonths:          []int{4, 5, 6, 7, 8},
		IndigenousUses:       []string{"Leaves poulticed on wounds to stop bleeding", "Tea for fever"},
		Butterflies:          []Butterfly{{CommonName: "West Coast Lady"}, {CommonName: "Field Crescent"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Stipa pulchra",
		CommonName:           "Purple Needlegrass",
		Communities:          []Region{RegionGrassland},
		WildlifeSupportScore: 65,
		EvergreenDeciduous:   HabitSemiEvergreen,
		MatureHeightFt:       3,
		MatureWidthFt:        2,
		GrowthRate:           GrowthModerate,
		LifespanYears:        150,
		FlowerColors:         []string{"purple-tinged"},
		BloomMonths:          []int{4, 5, 6},
		IndigenousUses:       []string{"Seed gathered as a staple grain", "Burned to improve seed yield"},
		Butterflies:          []Butterfly{{CommonName: "Common Ringlet"}, {CommonName: "Umber Skipper"}},
		Birds:                []Bird{{CommonName: "Savannah Sparrow"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Festuca californica",
		CommonName:           "California Fescue",
		Communities:          []Region{RegionGrassland, RegionOakWoodland},
		WildlifeSupportScore: 54,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       2.5,
		MatureWidthFt:        3,
		GrowthRate:           GrowthModerate,
		LifespanYears:        30,
		FlowerColors:         []string{"blue-green"},
		BloomMonths:          []int{4, 5},
		IndigenousUses:       []string{"Bunches used for basket foundations"},
		Butterflies:          []Butterfly{{CommonName: "Woodland Skipper"}},
		Birds:                []Bird{{CommonName: "Golden-crowned Sparrow"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Elymus glaucus",
		CommonName:           "Blue Wildrye",
		Communities:          []Region{RegionGrassland, RegionOakWoodland},
		WildlifeSupportScore: 52,
		EvergreenDeciduous:   HabitDeciduous,
		MatureHeightFt:       4,
		MatureWidthFt:        2,
		GrowthRate:           GrowthFast,
		LifespanYears:        20,
		FlowerColors:         []string{"green"},
		BloomMonths:          []int{5, 6, 7},
		IndigenousUses:       []string{"Seed parched and ground for pinole"},
		Butterflies:          []Butterfly{{CommonName: "Common Ringlet"}},
		Birds:                []Bird{{CommonName: "Lesser Goldfinch"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Muhlenbergia rigens",
		CommonName:           "Deer Grass",
		Communities:          []Region{RegionGrassland},
		WildlifeSupportScore: 50,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       4,
		MatureWidthFt:        4,
		GrowthRate:           GrowthModerate,
		LifespanYears:        40,
		FlowerColors:         []string{"tan"},
		BloomMonths:          []int{6, 7, 8},
		IndigenousUses:       []string{"Flower stalks are the classic basketry foundation material"},
		Butterflies:          []Butterfly{{CommonName: "Umber Skipper"}},
		SunAffinity:          SunFull,
	},
	{
		ScientificName:       "Iris douglasiana",
		CommonName:           "Douglas Iris",
		Communities:          []Region{RegionOakWoodland, RegionRiparian, RegionGrassland},
		WildlifeSupportScore: 56,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       1.5,
		MatureWidthFt:        2,
		GrowthRate:           GrowthModerate,
		LifespanYears:        20,
		FlowerColors:         []string{"purple", "blue", "cream"},
		BloomMonths:          []int{3, 4, 5},
		IndigenousUses:       []string{"Leaf-margin fibers twisted into exceptionally strong cordage"},
		Butterflies:          []Butterfly{{CommonName: "Common Buckeye"}},
		Birds:                []Bird{{CommonName: "Anna's Hummingbird"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Polystichum munitum",
		CommonName:           "Western Sword Fern",
		Communities:          []Region{RegionOakWoodland, RegionRiparian},
		WildlifeSupportScore: 45,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       3,
		MatureWidthFt:        4,
		GrowthRate:           GrowthSlow,
		LifespanYears:        60,
		FlowerColors:         nil,
		BloomMonths:          nil,
		IndigenousUses:       []string{"Fronds layered under food in earth ovens", "Rhizomes roasted in famine times"},
		Butterflies:          nil,
		Birds:                []Bird{{CommonName: "Pacific Wren"}},
		SunAffinity:          SunShade,
	},
	{
		ScientificName:       "Fragaria vesca",
		CommonName:           "Woodland Strawberry",
		Communities:          []Region{RegionOakWoodland, RegionRiparian},
		WildlifeSupportScore: 58,
		EvergreenDeciduous:   HabitSemiEvergreen,
		MatureHeightFt:       0.5,
		MatureWidthFt:        2,
		GrowthRate:           GrowthFast,
		LifespanYears:        5,
		FlowerColors:         []string{"white"},
		BloomMonths:          []int{3, 4, 5, 6},
		IndigenousUses:       []string{"Fruit eaten fresh", "Leaf tea for digestive complaints"},
		Butterflies:          []Butterfly{{CommonName: "Two-banded Checkered Skipper"}},
		Birds:                []Bird{{CommonName: "Spotted Towhee"}, {CommonName: "American Robin"}},
		SunAffinity:          SunShade,
	},
	{
		ScientificName:       "Oxalis oregana",
		CommonName:           "Redwood Sorrel",
		Communities:          []Region{RegionRiparian},
		WildlifeSupportScore: 40,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       0.5,
		MatureWidthFt:        3,
		GrowthRate:           GrowthFast,
		LifespanYears:        10,
		FlowerColors:         []string{"pink", "white"},
		BloomMonths:          []int{2, 3, 4, 5},
		IndigenousUses:       []string{"Leaves eaten sparingly as a sour green"},
		Butterflies:          nil,
		SunAffinity:          SunShade,
	},
	{
		ScientificName:       "Asarum caudatum",
		CommonName:           "Wild Ginger",
		Communities:          []Region{RegionRiparian, RegionOakWoodland},
		WildlifeSupportScore: 42,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       0.5,
		MatureWidthFt:        2,
		GrowthRate:           GrowthSlow,
		LifespanYears:        15,
		FlowerColors:         []string{"maroon"},
		BloomMonths:          []int{4, 5, 6},
		IndigenousUses:       []string{"Root used as a tonic tea and poultice"},
		Butterflies:          nil,
		SunAffinity:          SunShade,
	},
	{
		ScientificName:       "Clinopodium douglasii",
		CommonName:           "Yerba Buena",
		Communities:          []Region{RegionOakWoodland, RegionCoastalScrub},
		WildlifeSupportScore: 44,
		EvergreenDeciduous:   HabitEvergreen,
		MatureHeightFt:       0.3,
		MatureWidthFt:        3,
		GrowthRate:           GrowthModerate,
		LifespanYears:        8,
		FlowerColors:         []string{"white"},
		BloomMonths:          []int{4, 5, 6, 7},
		IndigenousUses:       []string{"The famous mint tea of the coastal peoples"},
		Butterflies:          nil,
		SunAffinity:          SunShade,
	},
	{
		ScientificName:       "Aesculus californica",
		CommonName:           "California Buckeye",
		Communities:          []Region{RegionOakWoodland, RegionRiparian},
		WildlifeSupportScore: 73,
		EvergreenDeciduous:   HabitDeciduous,
		MatureHeightFt:       25,
		MatureWidthFt:        30,
		GrowthRate:           GrowthModerate,
		LifespanYears:        150,
		FlowerColors:         []string{"white", "pale pink"},
		BloomMonths:          []int{5, 6},
		IndigenousUses:       []string{"Nuts leached for food in lean years", "Crushed nuts used to stun fish"},
		Butterflies:          []Butterfly{{CommonName: "Pale Swallowtail"}, {CommonName: "Spring Azure"}},
		Birds:                []Bird{{CommonName: "Bullock's Oriole"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Alnus rubra",
		CommonName:           "Red Alder",
		Communities:          []Region{RegionRiparian},
		WildlifeSupportScore: 77,
		EvergreenDeciduous:   HabitDeciduous,
		MatureHeightFt:       60,
		MatureWidthFt:        30,
		GrowthRate:           GrowthFast,
		LifespanYears:        80,
		FlowerColors:         []string{"reddish catkins"},
		BloomMonths:          []int{2, 3},
		IndigenousUses:       []string{"Bark yields a red dye", "Bark tea for tuberculosis and skin ailments"},
		Butterflies:          []Butterfly{{CommonName: "Western Tiger Swallowtail"}},
		Birds:                []Bird{{CommonName: "Pine Siskin"}, {CommonName: "American Goldfinch"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Acer macrophyllum",
		CommonName:           "Bigleaf Maple",
		Communities:          []Region{RegionRiparian},
		WildlifeSupportScore: 71,
		EvergreenDeciduous:   HabitDeciduous,
		MatureHeightFt:       50,
		MatureWidthFt:        40,
		GrowthRate:           GrowthFast,
		LifespanYears:        200,
		FlowerColors:         []string{"greenish-yellow"},
		BloomMonths:          []int{3, 4},
		IndigenousUses:       []string{"Inner bark woven into baskets and rope", "Sap occasionally boiled for syrup"},
		Butterflies:          []Butterfly{{CommonName: "Western Tiger Swallowtail"}},
		Birds:                []Bird{{CommonName: "Black-headed Grosbeak"}, {CommonName: "Evening Grosbeak"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Cornus sericea",
		CommonName:           "Redtwig Dogwood",
		Communities:          []Region{RegionRiparian},
		WildlifeSupportScore: 69,
		EvergreenDeciduous:   HabitDeciduous,
		MatureHeightFt:       10,
		MatureWidthFt:        12,
		GrowthRate:           GrowthFast,
		LifespanYears:        40,
		FlowerColors:         []string{"white"},
		BloomMonths:          []int{5, 6, 7},
		IndigenousUses:       []string{"Bark smoked in traditional mixtures", "Shoots used in basketry"},
		Butterflies:          []Butterfly{{CommonName: "Spring Azure"}},
		Birds:                []Bird{{CommonName: "Warbling Vireo"}, {CommonName: "Swainson's Thrush"}},
		SunAffinity:          SunPartial,
	},
	{
		ScientificName:       "Corylus cornuta",
		CommonName:           "California Hazelnut",
		Communities:          []Region{RegionRiparian, RegionOakWoodland},
		WildlifeSupportScore: 67,
		EvergreenDeciduous:   HabitDeciduous,
		MatureHeightFt:       12,
		MatureWidthFt:        12,
		GrowthRate:           GrowthModerate,
		LifespanYears:        50,
		FlowerColors:         []string{"yellow catkins"},
		BloomMonths:          []int{1, 2, 3},
		IndigenousUses:       []string{"Nuts a prized food", "Straight shoots used for baby baskets"},
		Butterflies:          nil,
		Birds:                []Bird{{CommonName: "Steller's Jay"}, {CommonName: "Chestnut-backed Chickadee"}},
		SunAffinity:          SunShade,
	},
}
