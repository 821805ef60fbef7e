package schema

// Custom validation tags registered by New.
const (
	TagDate       = "date"
	TagTimeDelta  = "timedelta"
	TagInterval   = "interval"
	TagImportable = "importable"
	TagClass      = "class"
	TagCallback   = "callback"
)
