package tui

import (
	"context"
	"strings"

	"github.com/Anjaratiana11/restaurant-mobile/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SignupModel is the Bubble Tea model for the account-creation screen: email,
// password and password confirmation. The identity provider issues a token on
// signup, so a successful submission finishes the auth flow directly.
type SignupModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewSignupModel creates a [SignupModel] with three pre-configured inputs.
// The email field receives focus immediately; both password fields use masked
// echo.
func NewSignupModel(ctx context.Context, auth service.AuthService) *SignupModel {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "email"
	fields[0].CharLimit = 64
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "mot de passe"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "confirmation"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	return &SignupModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(SignupResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeNetworkError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			repeat := m.inputs[2].Value()

			if email == "" || pass == "" || repeat == "" {
				m.errMsg = "Tous les champs sont obligatoires"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Les mots de passe ne correspondent pas"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString("Champ         │ Valeur\n")
	b.WriteString("──────────────┼──────────────────────────────────────────\n")
	b.WriteString("Email         │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Mot de passe  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Confirmation  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Création du compte...]\n")
	} else {
		b.WriteString("\n[Créer le compte]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nErreur : ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("CRÉER UN COMPTE", strings.TrimRight(b.String(), "\n"), "esc: retour │ tab: champ suivant │ enter: valider")
}

func (m *SignupModel) cmdSignup(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Signup(ctx, email, pass)
		return SignupResult{Err: err, Session: session}
	}
}

func (m *SignupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
