package gcode

// Settings are plain records of optional values. A nil field is unset and
// resolves to its documented default when a program is generated, never
// when the settings are stored.

// CodeGenerationSettings controls the layout of a generated program.
type CodeGenerationSettings struct {
	UseLineNumbers           *bool   `yaml:"useLineNumbers,omitempty"`
	StartLineNumber          *int    `yaml:"startLineNumber,omitempty"`
	LineNumberStep           *int    `yaml:"lineNumberStep,omitempty"`
	GenerateComments         *bool   `yaml:"generateComments,omitempty"`
	AllowArcs                *bool   `yaml:"allowArcs,omitempty"`
	FormatCommands           *bool   `yaml:"formatCommands,omitempty"`
	SetWorkCoordinateSystem  *bool   `yaml:"setWorkCoordinateSystem,omitempty"`
	CoordinateSystem         *string `yaml:"coordinateSystem,omitempty"`
	SetAbsoluteCoordinates   *bool   `yaml:"setAbsoluteCoordinates,omitempty"`
	AllowRelativeCoordinates *bool   `yaml:"allowRelativeCoordinates,omitempty"`
	SetZerosAtStart          *bool   `yaml:"setZerosAtStart,omitempty"`
	X0                       *string `yaml:"x0,omitempty"`
	Y0                       *string `yaml:"y0,omitempty"`
	Z0                       *string `yaml:"z0,omitempty"`
	MoveToPointAtEnd         *bool   `yaml:"moveToPointAtEnd,omitempty"`
	X                        *string `yaml:"x,omitempty"`
	Y                        *string `yaml:"y,omitempty"`
	Z                        *string `yaml:"z,omitempty"`
	DecimalPlaces            *int    `yaml:"decimalPlaces,omitempty"`
}

// SpindleSettings controls spindle start and stop.
type SpindleSettings struct {
	AddSpindleCode                *bool   `yaml:"addSpindleCode,omitempty"`
	SetSpindleSpeed               *bool   `yaml:"setSpindleSpeed,omitempty"`
	SpindleSpeed                  *string `yaml:"spindleSpeed,omitempty"`
	EnableSpindleBeforeOperations *bool   `yaml:"enableSpindleBeforeOperations,omitempty"`
	SpindleEnableCommand          *string `yaml:"spindleEnableCommand,omitempty"`
	AddSpindleDelayAfterEnable    *bool   `yaml:"addSpindleDelayAfterEnable,omitempty"`
	SpindleDelayParameter         *string `yaml:"spindleDelayParameter,omitempty"`
	SpindleDelayValue             *string `yaml:"spindleDelayValue,omitempty"`
	DisableSpindleAfterOperations *bool   `yaml:"disableSpindleAfterOperations,omitempty"`
}

// CoolantSettings controls coolant start and stop.
type CoolantSettings struct {
	AddCoolantCode       *bool `yaml:"addCoolantCode,omitempty"`
	EnableCoolantAtStart *bool `yaml:"enableCoolantAtStart,omitempty"`
	DisableCoolantAtEnd  *bool `yaml:"disableCoolantAtEnd,omitempty"`
}

// Config is the program configuration: three independent settings groups.
type Config struct {
	CodeGeneration CodeGenerationSettings `yaml:"codeGeneration"`
	Spindle        SpindleSettings        `yaml:"spindle"`
	Coolant        CoolantSettings        `yaml:"coolant"`
}

// Bool returns a pointer to b, for filling in settings.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for filling in settings.
func Int(n int) *int { return &n }

// String returns a pointer to s, for filling in settings.
func String(s string) *string { return &s }

// Defaults used for unset settings.
const (
	DefaultStartLineNumber       = 10
	DefaultLineNumberStep        = 10
	DefaultDecimalPlaces         = 3
	DefaultCoordinate            = "0"
	DefaultCoordinateSystem      = "G54"
	DefaultSpindleEnableCommand  = "M3"
	DefaultSpindleSpeed          = "1000"
	DefaultSpindleDelayParameter = "F"
	DefaultSpindleDelayValue     = "2"
)

// effective holds the resolved value of every setting. It is computed once
// per Generate call.
type effective struct {
	useLineNumbers   bool
	startLineNumber  int
	lineNumberStep   int
	comments         bool
	allowArcs        bool
	formatCommands   bool
	setWCS           bool
	wcs              string
	absolute         bool
	relative         bool
	zerosAtStart     bool
	x0, y0, z0       string
	moveAtEnd        bool
	endX, endY, endZ string
	places           int

	spindle         bool
	setSpeed        bool
	speed           string
	spindleAtStart  bool
	spindleCommand  string
	spindleDelay    bool
	delayParameter  string
	delayValue      string
	spindleOffAtEnd bool
	coolant         bool
	coolantAtStart  bool
	coolantOffAtEnd bool
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func intOr(n *int, def int) int {
	if n == nil {
		return def
	}
	return *n
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// resolve applies the defaults to every unset setting.
func resolve(c Config) effective {
	cg, sp, co := c.CodeGeneration, c.Spindle, c.Coolant
	e := effective{
		useLineNumbers:  boolOr(cg.UseLineNumbers, true),
		startLineNumber: intOr(cg.StartLineNumber, DefaultStartLineNumber),
		lineNumberStep:  intOr(cg.LineNumberStep, DefaultLineNumberStep),
		comments:        boolOr(cg.GenerateComments, false),
		allowArcs:       boolOr(cg.AllowArcs, false),
		formatCommands:  boolOr(cg.FormatCommands, false),
		setWCS:          boolOr(cg.SetWorkCoordinateSystem, false),
		wcs:             stringOr(cg.CoordinateSystem, DefaultCoordinateSystem),
		absolute:        boolOr(cg.SetAbsoluteCoordinates, true),
		relative:        boolOr(cg.AllowRelativeCoordinates, false),
		zerosAtStart:    boolOr(cg.SetZerosAtStart, true),
		x0:              stringOr(cg.X0, DefaultCoordinate),
		y0:              stringOr(cg.Y0, DefaultCoordinate),
		z0:              stringOr(cg.Z0, DefaultCoordinate),
		moveAtEnd:       boolOr(cg.MoveToPointAtEnd, false),
		endX:            stringOr(cg.X, DefaultCoordinate),
		endY:            stringOr(cg.Y, DefaultCoordinate),
		endZ:            stringOr(cg.Z, DefaultCoordinate),
		places:          intOr(cg.DecimalPlaces, DefaultDecimalPlaces),

		spindle:         boolOr(sp.AddSpindleCode, false),
		setSpeed:        boolOr(sp.SetSpindleSpeed, true),
		speed:           stringOr(sp.SpindleSpeed, DefaultSpindleSpeed),
		spindleAtStart:  boolOr(sp.EnableSpindleBeforeOperations, true),
		spindleCommand:  stringOr(sp.SpindleEnableCommand, DefaultSpindleEnableCommand),
		spindleDelay:    boolOr(sp.AddSpindleDelayAfterEnable, false),
		delayParameter:  stringOr(sp.SpindleDelayParameter, DefaultSpindleDelayParameter),
		delayValue:      stringOr(sp.SpindleDelayValue, DefaultSpindleDelayValue),
		spindleOffAtEnd: boolOr(sp.DisableSpindleAfterOperations, true),

		coolant:         boolOr(co.AddCoolantCode, false),
		coolantAtStart:  boolOr(co.EnableCoolantAtStart, true),
		coolantOffAtEnd: boolOr(co.DisableCoolantAtEnd, true),
	}
	if e.places < 0 {
		e.places = 0
	}
	if e.places > maxDecimalPlaces {
		e.places = maxDecimalPlaces
	}
	if e.lineNumberStep <= 0 {
		e.lineNumberStep = DefaultLineNumberStep
	}
	if e.startLineNumber < 0 {
		e.startLineNumber = DefaultStartLineNumber
	}
	return e
}
