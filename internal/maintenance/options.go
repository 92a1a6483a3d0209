package maintenance

// Category groups schedule items and service records.
type Category string

const (
	CategoryFluid            Category = "fluid"
	CategoryEngineDrivetrain Category = "engine_drivetrain"
	CategoryConsumable       Category = "consumable"
	CategoryInspection       Category = "inspection"
	CategoryOther            Category = "other"
)

// CategoryOptions is the static form configuration for one category.
type CategoryOptions struct {
	Label  string   `json:"label"`
	Titles []string `json:"titles"`
	Brands []string `json:"brands"`
}

// Categories lists the categories in display order.
var Categories = []Category{
	CategoryFluid,
	CategoryEngineDrivetrain,
	CategoryConsumable,
	CategoryInspection,
	CategoryOther,
}

// Options is the title/brand lookup table offered when logging a service.
var Options = map[Category]CategoryOptions{
	CategoryFluid: {
		Label: "Fluids",
		Titles: []string{
			"Engine Oil Change",
			"Transmission Fluid Change",
			"Front Differential Fluid Change",
			"Rear Differential Fluid Change",
			"Coolant Flush",
			"Brake Fluid Flush",
			"Power Steering Fluid Change",
			"Clutch Fluid Change",
		},
		Brands: []string{"Subaru OEM", "Motul", "Mobil 1", "Castrol", "Valvoline", "Pennzoil", "Royal Purple", "Amsoil"},
	},
	CategoryEngineDrivetrain: {
		Label: "Engine & Drivetrain",
		Titles: []string{
			"Spark Plugs",
			"Timing Belt",
			"Serpentine Belt",
			"Water Pump",
			"Thermostat",
			"Clutch Replacement",
			"Alternator",
			"Starter",
			"Fuel Pump",
			"Fuel Filter",
			"Turbo Inspection/Service",
			"Valve Cover Gaskets",
			"Head Gaskets",
		},
		Brands: []string{"Subaru OEM", "NGK", "Denso", "Gates", "ACDelco", "Bosch", "Aisin", "Exedy"},
	},
	CategoryConsumable: {
		Label: "Consumables",
		Titles: []string{
			"Air Filter",
			"Cabin Air Filter",
			"Brake Pads - Front",
			"Brake Pads - Rear",
			"Brake Rotors - Front",
			"Brake Rotors - Rear",
			"Tires - All Four",
			"Tire Rotation",
			"Wheel Alignment",
			"Windshield Wipers",
			"Battery",
		},
		Brands: []string{
			"Subaru OEM", "Michelin", "Bridgestone", "Continental", "Brembo",
			"StopTech", "EBC", "Hawk", "K&N", "Mann Filter", "Bosch",
		},
	},
	CategoryInspection: {
		Label: "Inspections",
		Titles: []string{
			"Annual Safety Inspection",
			"Pre-Purchase Inspection",
			"Emissions Test",
			"General Inspection",
			"Diagnostic Scan",
		},
		Brands: []string{"N/A"},
	},
	CategoryOther: {
		Label:  "Other",
		Titles: []string{"Detailing", "Undercoating", "Rust Prevention", "Custom"},
		Brands: []string{"N/A"},
	},
}

// ServiceLocations are the suggested places a service was performed.
var ServiceLocations = []string{
	"DIY - Home Garage",
	"Subaru Dealership",
	"Independent Mechanic",
	"Specialty Shop",
	"Quick Lube",
	"Tire Shop",
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	_, ok := Options[Category(c)]
	return ok
}
