package render

// Widget identifiers understood by Field.
const (
	WidgetText           = "text"
	WidgetEmail          = "email"
	WidgetURL            = "url"
	WidgetPassword       = "password"
	WidgetHidden         = "hidden"
	WidgetTextarea       = "textarea"
	WidgetSelect         = "select"
	WidgetSelectMultiple = "select_multiple"
	WidgetRadio          = "radio"
	WidgetCheckbox       = "checkbox"
	WidgetFile           = "file"
)

// Choice is one selectable option. Order is preserved when rendering.
type Choice struct {
	Value string
	Label string
}

// FieldError is one resolved error of a field.
type FieldError struct {
	Rule    string
	Message string
}

// FieldView is everything the renderer needs to draw one field.
type FieldView struct {
	// Name is the transport name, "tags[]" for multi-valued fields.
	Name string
	// ID is the element id, "id_<name>".
	ID    string
	Label string
	// Widget is one of the Widget* identifiers.
	Widget string
	// Value is the current scalar value.
	Value string
	// Values are the selected keys of a multi-valued field.
	Values  []string
	Checked bool
	Choices []Choice
	// Accept lists the media types a file field takes.
	Accept     []string
	Attributes map[string]string
	Errors     []FieldError
	HelpText   string
	Required   bool
	Multi      bool
}

// FormView is everything the renderer needs to draw a whole form.
type FormView struct {
	Name        string
	ID          string
	Method      string
	Multipart   bool
	Bound       bool
	Valid       bool
	Fields      []FieldView
	SubmitLabel string
	ResetLabel  string
}
