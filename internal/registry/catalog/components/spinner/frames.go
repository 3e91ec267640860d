package spinner

// Frame sets.
var (
	Line   = []string{"|", "/", "-", "\\"}
	Dots   = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	Pulse  = []string{"█", "▓", "▒", "░", "▒", "▓"}
	Points = []string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●"}
)
