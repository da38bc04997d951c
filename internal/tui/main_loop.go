package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Anjaratiana11/restaurant-mobile/internal/service"
	"github.com/Anjaratiana11/restaurant-mobile/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainScreen int

const (
	screenDishes mainScreen = iota
	screenDetail
	screenOrder
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	userID   int64

	screen  mainScreen
	spin    spinner.Model
	loading bool
	status  string
	errMsg  string

	dishes []models.Dish
	idx    int

	detailDish        models.Dish
	detailPrice       float64
	detailIngredients []models.Ingredient
	qtyInput          textinput.Model
	adding            bool

	order        models.OrderView
	orderIdx     int
	orderAbsent  bool
	paying       bool
	deletingLine bool

	logout bool
}

type dishesLoadedMsg struct {
	dishes []models.Dish
	err    error
}

type dishDetailMsg struct {
	dish        models.Dish
	price       float64
	ingredients []models.Ingredient
	err         error
}

type orderLoadedMsg struct {
	view   models.OrderView
	absent bool
	err    error
}

type addDoneMsg struct {
	ack models.Ack
	err error
}

type payDoneMsg struct {
	ack models.Ack
	err error
}

type deleteLineDoneMsg struct {
	ack models.Ack
	err error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, userID int64) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	qty := textinput.New()
	qty.Placeholder = "1"
	qty.CharLimit = 3
	qty.Width = 5

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		userID:   userID,
		screen:   screenDishes,
		spin:     s,
		qtyInput: qty,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoadDishes())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case dishesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.dishes = msg.dishes
		if m.idx >= len(m.dishes) {
			m.idx = len(m.dishes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case dishDetailMsg:
		m.loading = false
		if msg.err != nil {
			m.screen = screenDishes
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.detailDish = msg.dish
		m.detailPrice = msg.price
		m.detailIngredients = msg.ingredients
		m.qtyInput.SetValue("")
		m.qtyInput.Focus()
		m.screen = screenDetail
		return m, textinput.Blink

	case orderLoadedMsg:
		m.loading = false
		m.orderAbsent = msg.absent
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			m.screen = screenOrder
			return m, nil
		}
		m.errMsg = ""
		m.order = msg.view
		if m.orderIdx >= len(m.order.Lines) {
			m.orderIdx = len(m.order.Lines) - 1
		}
		if m.orderIdx < 0 {
			m.orderIdx = 0
		}
		m.screen = screenOrder
		return m, nil

	case addDoneMsg:
		m.adding = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNoCurrentOrder) {
				m.errMsg = "Aucune commande en cours pour cet utilisateur"
			} else {
				m.errMsg = humanizeNetworkError(msg.err)
			}
			return m, nil
		}
		m.errMsg = ""
		if msg.ack.Message != "" {
			m.status = msg.ack.Message
		} else {
			m.status = "Plat ajouté à la commande"
		}
		m.screen = screenDishes
		return m, nil

	case payDoneMsg:
		m.paying = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrPaymentRefused) {
				m.errMsg = "Paiement refusé : " + msg.ack.Message
			} else {
				m.errMsg = humanizeNetworkError(msg.err)
			}
			return m, nil
		}
		m.errMsg = ""
		if msg.ack.Message != "" {
			m.status = msg.ack.Message
		} else {
			m.status = "Commande payée"
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadOrder())

	case deleteLineDoneMsg:
		m.deletingLine = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Ligne supprimée"
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadOrder())
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenDetail {
			var cmd tea.Cmd
			m.qtyInput, cmd = m.qtyInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenOrder:
		return m.updateOrder(keyMsg)
	default:
		return m.updateDishes(keyMsg)
	}
}

func (m mainLoopModel) updateDishes(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.dishes)-1 {
			m.idx++
		}
	case "r":
		m.status = ""
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadDishes())
	case "enter":
		dish, ok := m.currentDish()
		if !ok {
			m.status = "Aucun plat"
			return m, nil
		}
		m.status = ""
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadDetail(dish.ID))
	case "o":
		m.status = ""
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadOrder())
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenDishes
		m.errMsg = ""
		return m, nil
	case "enter":
		if m.adding {
			return m, nil
		}

		raw := strings.TrimSpace(m.qtyInput.Value())
		if raw == "" {
			raw = "1"
		}
		qty, err := strconv.Atoi(raw)
		if err != nil || qty <= 0 {
			m.errMsg = "Quantité invalide (entier positif attendu)"
			return m, nil
		}

		m.errMsg = ""
		m.adding = true
		return m, m.cmdAddDish(m.detailDish.ID, qty)
	}

	var cmd tea.Cmd
	m.qtyInput, cmd = m.qtyInput.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateOrder(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenDishes
		m.errMsg = ""
		return m, nil
	case "up", "k":
		if m.orderIdx > 0 {
			m.orderIdx--
		}
	case "down", "j":
		if m.orderIdx < len(m.order.Lines)-1 {
			m.orderIdx++
		}
	case "r":
		m.status = ""
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadOrder())
	case "ctrl+d":
		if m.deletingLine || m.orderAbsent {
			return m, nil
		}
		line, ok := m.currentLine()
		if !ok {
			m.status = "Aucune ligne"
			return m, nil
		}
		m.deletingLine = true
		return m, m.cmdDeleteLine(line.Line.ID)
	case "p":
		if m.paying || m.orderAbsent {
			return m, nil
		}
		m.paying = true
		m.status = "Paiement..."
		m.errMsg = ""
		return m, m.cmdPay()
	case "c":
		if m.orderAbsent {
			m.status = "Rien à copier"
			return m, nil
		}
		if err := clipboard.WriteAll(strconv.FormatInt(m.order.OrderID, 10)); err != nil {
			m.errMsg = fmt.Sprintf("Erreur de copie : %v", err)
			return m, nil
		}
		m.status = "Numéro de commande copié"
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenOrder:
		return m.viewOrder()
	default:
		return m.viewDishes()
	}
}

func (m mainLoopModel) viewDishes() string {
	out := ""

	if m.loading {
		out += m.spin.View() + " Chargement du menu...\n"
		return renderPage("MENU DU RESTAURANT", strings.TrimRight(out, "\n"), "")
	}

	if m.errMsg != "" {
		out += "Erreur : " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Statut : " + m.status + "\n"
	}

	if len(m.dishes) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Aucun plat au menu\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "N°   │ Plat                     │ Préparation\n"
		out += "─────┼──────────────────────────┼────────────\n"
		for i, dish := range m.dishes {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %s\n",
				cursor,
				i+1,
				fitText(dish.Name, 24),
				formatMinutes(dish.PreparationTime),
			)
		}
	}

	return renderPage(
		"MENU DU RESTAURANT",
		strings.TrimRight(out, "\n"),
		"enter: détail │ o: commande │ r: actualiser │ l: déconnexion │ ↑/↓: nav.",
	)
}

func (m mainLoopModel) viewDetail() string {
	if m.loading {
		return renderPage("DÉTAIL DU PLAT", m.spin.View()+" Chargement...", "esc: retour")
	}

	var b strings.Builder
	b.WriteString("[ PLAT ]\n")
	b.WriteString("Nom         : " + m.detailDish.Name + "\n")
	b.WriteString("Préparation : " + formatMinutes(m.detailDish.PreparationTime) + "\n")
	b.WriteString("Prix        : " + formatPrice(m.detailPrice) + "\n\n")

	b.WriteString("[ INGRÉDIENTS ]\n")
	if len(m.detailIngredients) == 0 {
		b.WriteString("(aucun)\n")
	} else {
		for _, ing := range m.detailIngredients {
			b.WriteString("- " + ing.Name + "\n")
		}
	}

	b.WriteString("\nQuantité    : [ " + m.qtyInput.View() + " ]\n")
	if m.adding {
		b.WriteString("\n[Ajout...]\n")
	} else {
		b.WriteString("\n[Ajouter à la commande]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nErreur : " + m.errMsg + "\n")
	}

	return renderPage("DÉTAIL : "+m.detailDish.Name, strings.TrimRight(b.String(), "\n"), "enter: ajouter │ esc: retour")
}

func (m mainLoopModel) viewOrder() string {
	if m.loading {
		return renderPage("MA COMMANDE", m.spin.View()+" Chargement de la commande...", "esc: retour")
	}

	out := ""
	if m.errMsg != "" {
		out += "Erreur : " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Statut : " + m.status + "\n"
	}

	if m.orderAbsent {
		if out != "" {
			out += "\n"
		}
		out += "Aucune commande en cours\n"
		return renderPage("MA COMMANDE", strings.TrimRight(out, "\n"), "esc: retour │ r: actualiser")
	}

	if out != "" {
		out += "\n"
	}
	out += fmt.Sprintf("Commande n° %d\n\n", m.order.OrderID)

	if len(m.order.Lines) == 0 {
		out += "Aucune ligne\n"
	} else {
		out += "N°   │ Plat                     │ Prix unitaire │ État\n"
		out += "─────┼──────────────────────────┼───────────────┼──────────\n"
		for i, line := range m.order.Lines {
			cursor := " "
			if i == m.orderIdx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-13s │ %s\n",
				cursor,
				i+1,
				fitText(line.Dish.Name, 24),
				formatPrice(line.Price),
				lineStatusLabel(line.Line.Status),
			)
		}
	}

	out += "\nTotal : " + formatPrice(m.order.Total) + "\n"

	return renderPage(
		"MA COMMANDE",
		strings.TrimRight(out, "\n"),
		"p: payer │ ctrl+d: supprimer la ligne │ c: copier le n° │ r: actualiser │ esc: retour",
	)
}

func (m mainLoopModel) currentDish() (models.Dish, bool) {
	if len(m.dishes) == 0 || m.idx < 0 || m.idx >= len(m.dishes) {
		return models.Dish{}, false
	}
	return m.dishes[m.idx], true
}

func (m mainLoopModel) currentLine() (models.OrderLineView, bool) {
	if len(m.order.Lines) == 0 || m.orderIdx < 0 || m.orderIdx >= len(m.order.Lines) {
		return models.OrderLineView{}, false
	}
	return m.order.Lines[m.orderIdx], true
}

func (m mainLoopModel) cmdLoadDishes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.MenuService

	return func() tea.Msg {
		dishes, err := svc.Dishes(ctx)
		return dishesLoadedMsg{dishes: dishes, err: err}
	}
}

func (m mainLoopModel) cmdLoadDetail(dishID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.MenuService

	return func() tea.Msg {
		dish, err := svc.Dish(ctx, dishID)
		if err != nil {
			return dishDetailMsg{err: err}
		}

		price, err := svc.DishPrice(ctx, dishID)
		if err != nil {
			return dishDetailMsg{err: err}
		}

		ingredients, err := svc.Ingredients(ctx, dishID)
		if err != nil {
			return dishDetailMsg{err: err}
		}

		return dishDetailMsg{dish: dish, price: price, ingredients: ingredients}
	}
}

func (m mainLoopModel) cmdLoadOrder() tea.Cmd {
	ctx := m.ctx
	userID := m.userID
	orders := m.services.OrderService

	return func() tea.Msg {
		orderID, err := orders.CurrentOrderID(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrNoCurrentOrder) {
				return orderLoadedMsg{absent: true}
			}
			return orderLoadedMsg{err: err}
		}

		view, err := orders.OrderView(ctx, orderID)
		return orderLoadedMsg{view: view, err: err}
	}
}

func (m mainLoopModel) cmdAddDish(dishID int64, quantity int) tea.Cmd {
	ctx := m.ctx
	userID := m.userID
	orders := m.services.OrderService

	return func() tea.Msg {
		orderID, err := orders.CurrentOrderID(ctx, userID)
		if err != nil {
			return addDoneMsg{err: err}
		}

		ack, err := orders.AddDish(ctx, orderID, dishID, quantity)
		return addDoneMsg{ack: ack, err: err}
	}
}

func (m mainLoopModel) cmdPay() tea.Cmd {
	ctx := m.ctx
	orderID := m.order.OrderID
	orders := m.services.OrderService

	return func() tea.Msg {
		ack, err := orders.Pay(ctx, orderID)
		return payDoneMsg{ack: ack, err: err}
	}
}

func (m mainLoopModel) cmdDeleteLine(lineID int64) tea.Cmd {
	ctx := m.ctx
	orders := m.services.OrderService

	return func() tea.Msg {
		ack, err := orders.RemoveLine(ctx, lineID)
		return deleteLineDoneMsg{ack: ack, err: err}
	}
}

func lineStatusLabel(status int) string {
	switch status {
	case models.StatusPending:
		return "en cours"
	case models.StatusValidated:
		return "validée"
	default:
		return fmt.Sprintf("état %d", status)
	}
}
