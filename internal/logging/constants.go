package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldOutputFile = "output_file"
	FieldEngine     = "engine"
	FieldFormat     = "format"
	FieldPage       = "page"
	FieldPageCount  = "page_count"
	FieldTool       = "tool"
	FieldMode       = "mode"
	FieldConfigFile = "config_file"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
)
