package configio

// Raw* mirror the JSON shape of each config document. Fields are decoded
// in two stages: encoding/json into map[string]any, then mapstructure into
// these typed records. Unknown fields are ignored.

type rawActivity struct {
	PerWeek float64 `mapstructure:"per_week"`
	Length  int     `mapstructure:"length"`
}

type rawSubject struct {
	MainTeacher      string      `mapstructure:"main_teacher"`
	Language         string      `mapstructure:"language"`
	Course           rawActivity `mapstructure:"course"`
	Seminar          rawActivity `mapstructure:"seminar"`
	Laboratory       rawActivity `mapstructure:"laboratory"`
	LabSplitOverride int         `mapstructure:"lab_split_override"`
}

type rawInterval struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

type rawCapability struct {
	CanSeminar   bool `mapstructure:"can_seminar"`
	CanLaborator bool `mapstructure:"can_laboratory"`
}

type rawTeacher struct {
	MaxHours           int                      `mapstructure:"max_hours"`
	PreferredBuildings []string                 `mapstructure:"preferred_buildings"`
	Languages          []string                 `mapstructure:"languages"`
	Capabilities       map[string]rawCapability `mapstructure:"capabilities"`
	Availability       map[string][]rawInterval `mapstructure:"availability"`
}

type rawRoom struct {
	Capacity int      `mapstructure:"capacity"`
	Flags    []string `mapstructure:"flags"`
}

type rawPlace struct {
	OpeningHours map[string][]rawInterval `mapstructure:"opening_hours"`
	Rooms        map[string]rawRoom       `mapstructure:"rooms"`
}

type rawGroup struct {
	Size            int      `mapstructure:"size"`
	Language        string   `mapstructure:"language"`
	Subjects        []string `mapstructure:"subjects"`
	SeminarySplit   int      `mapstructure:"seminary_split"`
	LaboratorySplit int      `mapstructure:"laboratory_split"`
}
