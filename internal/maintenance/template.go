package maintenance

// TemplateItem is one entry of the factory maintenance schedule.
type TemplateItem struct {
	Title          string
	Category       Category
	Description    string
	IntervalMiles  *int
	IntervalMonths *int
}

// Interval returns the item's recurrence.
func (t TemplateItem) Interval() Interval {
	return Interval{Miles: t.IntervalMiles, Months: t.IntervalMonths}
}

func miles(n int) *int  { return &n }
func months(n int) *int { return &n }

// FactorySchedule is the factory service manual schedule every new vehicle
// is seeded with. Callers must not modify it.
var FactorySchedule = []TemplateItem{
	// fluids
	{
		Title:          "Engine Oil Change",
		Category:       CategoryFluid,
		Description:    "Replace engine oil and filter. Critical for turbo longevity.",
		IntervalMiles:  miles(3750),
		IntervalMonths: months(4),
	},
	{
		Title:         "Transmission Fluid Change",
		Category:      CategoryFluid,
		Description:   "Replace manual transmission fluid. More frequent under harsh driving.",
		IntervalMiles: miles(30000),
	},
	{
		Title:         "Front Differential Fluid Change",
		Category:      CategoryFluid,
		Description:   "Replace front differential gear oil.",
		IntervalMiles: miles(30000),
	},
	{
		Title:         "Rear Differential Fluid Change",
		Category:      CategoryFluid,
		Description:   "Replace rear differential gear oil.",
		IntervalMiles: miles(30000),
	},
	{
		Title:          "Engine Coolant Flush",
		Category:       CategoryFluid,
		Description:    "Replace engine coolant. Use only Subaru Super Coolant.",
		IntervalMiles:  miles(30000),
		IntervalMonths: months(24),
	},
	{
		Title:          "Brake Fluid Flush",
		Category:       CategoryFluid,
		Description:    "Replace brake fluid to prevent moisture contamination.",
		IntervalMonths: months(24),
	},
	{
		Title:         "Power Steering Fluid Change",
		Category:      CategoryFluid,
		Description:   "Replace power steering fluid.",
		IntervalMiles: miles(30000),
	},

	// engine and drivetrain
	{
		Title:         "Timing Belt Replacement",
		Category:      CategoryEngineDrivetrain,
		Description:   "Replace timing belt, idler pulleys, water pump, cam/crank seals. Interference engine: belt failure causes catastrophic damage.",
		IntervalMiles: miles(105000),
	},
	{
		Title:         "Water Pump Replacement",
		Category:      CategoryEngineDrivetrain,
		Description:   "Replace during timing belt service.",
		IntervalMiles: miles(105000),
	},
	{
		Title:         "Spark Plugs Replacement",
		Category:      CategoryEngineDrivetrain,
		Description:   "Replace spark plugs. Use copper core plugs (NGK recommended).",
		IntervalMiles: miles(60000),
	},
	{
		Title:         "Serpentine Belt Inspection",
		Category:      CategoryEngineDrivetrain,
		Description:   "Inspect drive belt for wear and cracks.",
		IntervalMiles: miles(30000),
	},
	{
		Title:         "Fuel Filter Replacement",
		Category:      CategoryEngineDrivetrain,
		Description:   "Replace fuel filter (in-tank type).",
		IntervalMiles: miles(60000),
	},

	// consumables
	{
		Title:         "Air Filter Replacement",
		Category:      CategoryConsumable,
		Description:   "Replace engine air filter.",
		IntervalMiles: miles(30000),
	},
	{
		Title:          "Cabin Air Filter Replacement",
		Category:       CategoryConsumable,
		Description:    "Replace cabin/pollen filter.",
		IntervalMiles:  miles(15000),
		IntervalMonths: months(12),
	},
	{
		Title:         "Tire Rotation",
		Category:      CategoryConsumable,
		Description:   "Rotate and inspect tires for even wear.",
		IntervalMiles: miles(7500),
	},
	{
		Title:         "Brake Pad Inspection",
		Category:      CategoryConsumable,
		Description:   "Inspect brake pads and rotors for wear.",
		IntervalMiles: miles(15000),
	},

	// inspections
	{
		Title:          "General Inspection",
		Category:       CategoryInspection,
		Description:    "Inspect steering, suspension, clutch, brake lines, axle boots, parking brake.",
		IntervalMiles:  miles(15000),
		IntervalMonths: months(12),
	},
}
