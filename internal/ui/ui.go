package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)

	MateEmoji    = "🧉"
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	RobotEmoji   = Info.Sprint("🤖")
)

// SmartSpinner es un spinner para los comandos manuales de la CLI.
type SmartSpinner struct {
	spinner *spinner.Spinner
}

func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+MateEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

// Log pausa el spinner para imprimir una línea y lo retoma.
func (s *SmartSpinner) Log(msg string) {
	s.spinner.Stop()
	fmt.Println("  " + msg)
	s.spinner.Start()
}

func (s *SmartSpinner) Success(msg string) {
	s.spinner.Stop()
	fmt.Printf("%s %s\n", SuccessEmoji, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.spinner.Stop()
	fmt.Printf("%s %s\n", Error.Sprint("❌"), msg)
}

// PrintSectionBanner imprime un encabezado de sección.
func PrintSectionBanner(title string) {
	fmt.Println()
	Info.Printf("━━━ %s ━━━\n", title)
}

// PrintSuggestion imprime la sugerencia generada para lectura en terminal.
func PrintSuggestion(text string) {
	fmt.Println()
	fmt.Printf("%s %s\n\n", RobotEmoji, Info.Sprint("Suggestion"))
	fmt.Println(text)
	fmt.Println()
}
