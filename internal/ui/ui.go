package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/cinevault/internal/app"
	"github.com/desertthunder/cinevault/internal/checkout"
	"github.com/desertthunder/cinevault/internal/formatter"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/notify"
	"github.com/desertthunder/cinevault/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CatalogView ViewState = iota
	DetailView
	CartView
	LoginView
	CheckoutView
	ProcessingView
	ResultView
)

// Form field indexes.
const (
	loginEmail = iota
	loginPassword
)

const (
	payFullName = iota
	payEmail
	payCardNumber
	payCardName
	payExpiry
	payCVV
)

const cardFieldLimit = 19

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	app          *app.App
	notes        *notify.Recorder
	view         ViewState
	width        int
	height       int
	catalogList  list.Model
	cartList     list.Model
	selected     models.Movie
	loginForm    form
	payForm      form
	afterLogin   ViewState
	cancelLogin  context.CancelFunc
	signingIn    bool
	spinner      spinner.Model
	progressChan chan checkout.ProgressUpdate
	progress     checkout.ProgressUpdate
	order        *checkout.Order
	orderErr     error
	status       notify.Message
	hasStatus    bool
	formErr      string
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model over a. notes must be the recorder a's stores notify through.
func NewModel(ctx context.Context, a *app.App, notes *notify.Recorder) *Model {
	m := &Model{
		ctx:     ctx,
		app:     a,
		notes:   notes,
		view:    CatalogView,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    newKeyMap(),
	}

	m.catalogList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.catalogList.Title = "CineVault"
	m.cartList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.cartList.SetFilteringEnabled(false)

	m.refreshCatalog()
	m.refreshCart()
	return m
}

// Init starts the spinner loop; the stores are already loaded by [NewModel].
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.catalogList.SetSize(msg.Width-4, msg.Height-8)
		m.cartList.SetSize(msg.Width-4, msg.Height-14)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.view {
		case CatalogView:
			return m.handleCatalogKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case CartView:
			return m.handleCartKeys(msg)
		case LoginView:
			return m.handleLoginKeys(msg)
		case CheckoutView:
			return m.handleCheckoutKeys(msg)
		case ProcessingView:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateLists(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgCartChanged:
		m.pullStatus()
		if err, _ := msg.data.(error); err != nil {
			m.setError(err)
		}
		m.refreshCart()
		m.refreshCatalog()
		return m, nil

	case MsgSessionChanged:
		res := msg.data.(sessionResult)
		m.cancelLogin = nil
		m.signingIn = false
		m.pullStatus()
		if res.err != nil {
			if errors.Is(res.err, context.Canceled) {
				m.view = CatalogView
				return m, nil
			}
			if !errors.Is(res.err, shared.ErrMissingField) {
				m.setError(res.err)
			}
			return m, nil
		}
		m.refreshCatalog()
		m.view = m.afterLogin
		if m.view == CheckoutView {
			m.prefillPayment(res.user)
		}
		return m, nil

	case MsgProgressUpdate:
		m.progress = msg.data.(checkout.ProgressUpdate)
		return m, m.waitForProgress()

	case MsgCheckoutComplete:
		res := msg.data.(checkoutResult)
		m.pullStatus()
		m.order = res.order
		m.orderErr = res.err
		m.view = ResultView
		m.progressChan = nil
		m.refreshCart()
		m.refreshCatalog()
		return m, nil
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case CatalogView:
		body = m.renderCatalog()
	case DetailView:
		body = m.renderDetail()
	case CartView:
		body = m.renderCart()
	case LoginView:
		body = m.renderLogin()
	case CheckoutView:
		body = m.renderCheckout()
	case ProcessingView:
		body = m.renderProcessing()
	case ResultView:
		body = m.renderResult()
	}

	return body + "\n" + m.renderStatus()
}

func (m *Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.catalogList.SettingFilter() {
		var cmd tea.Cmd
		m.catalogList, cmd = m.catalogList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.catalogList.SelectedItem().(movieItem); ok {
			m.selected = item.movie
			m.view = DetailView
		}
		return m, nil
	case key.Matches(msg, m.keys.add):
		if item, ok := m.catalogList.SelectedItem().(movieItem); ok {
			return m, m.addToCart(item.movie)
		}
		return m, nil
	case key.Matches(msg, m.keys.cart):
		m.view = CartView
		return m, nil
	case key.Matches(msg, m.keys.login):
		return m, m.openLogin(CatalogView)
	case key.Matches(msg, m.keys.logout):
		return m, m.logout()
	}

	var cmd tea.Cmd
	m.catalogList, cmd = m.catalogList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = CatalogView
	case key.Matches(msg, m.keys.add):
		if !m.app.Session.IsOwned(m.selected.ID) {
			return m, m.addToCart(m.selected)
		}
	case key.Matches(msg, m.keys.cart):
		m.view = CartView
	}
	return m, nil
}

func (m *Model) handleCartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = CatalogView
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if item, ok := m.cartList.SelectedItem().(lineItem); ok {
			return m, m.removeFromCart(item.line.Movie.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.clear):
		if m.app.Cart.Len() > 0 {
			return m, m.clearCart()
		}
		return m, nil
	case key.Matches(msg, m.keys.checkout):
		if m.app.Cart.Len() == 0 {
			m.app.Notifier.Error("Your cart is empty")
			m.pullStatus()
			return m, nil
		}
		if !m.app.Session.Authenticated() {
			return m, m.openLogin(CheckoutView)
		}
		user, _ := m.app.Session.User()
		m.prefillPayment(user)
		m.view = CheckoutView
		return m, nil
	}

	var cmd tea.Cmd
	m.cartList, cmd = m.cartList.Update(msg)
	return m, cmd
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.signingIn {
		if key.Matches(msg, m.keys.back) && m.cancelLogin != nil {
			m.cancelLogin()
		}
		return m, nil
	}

	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = m.afterLogin
		if m.view == CheckoutView {
			m.view = CartView
		}
		return m, nil
	case key.Matches(msg, m.keys.next):
		return m, m.loginForm.move(1)
	case key.Matches(msg, m.keys.prev):
		return m, m.loginForm.move(-1)
	case key.Matches(msg, m.keys.submit):
		return m, m.login(m.loginForm.value(loginEmail), m.loginForm.value(loginPassword))
	}

	return m, m.loginForm.update(msg)
}

func (m *Model) handleCheckoutKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.formErr = ""
		m.view = CartView
		return m, nil
	case key.Matches(msg, m.keys.next):
		return m, m.payForm.move(1)
	case key.Matches(msg, m.keys.prev):
		return m, m.payForm.move(-1)
	case key.Matches(msg, m.keys.submit):
		contact, payment := m.paymentValues()
		for _, err := range []error{checkout.ValidateContact(contact), checkout.ValidatePayment(payment)} {
			var verr *checkout.ValidationError
			if errors.As(err, &verr) {
				m.formErr = verr.Message
				return m, nil
			}
		}
		m.formErr = ""
		m.view = ProcessingView
		return m, m.startCheckout(contact, payment)
	}

	return m, m.payForm.update(msg)
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "q" || msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.restart):
		m.order = nil
		m.orderErr = nil
		m.view = CatalogView
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CatalogView:
		m.catalogList, cmd = m.catalogList.Update(msg)
	case CartView:
		m.cartList, cmd = m.cartList.Update(msg)
	}
	return m, cmd
}

func (m *Model) addToCart(movie models.Movie) tea.Cmd {
	return func() tea.Msg {
		return cartChangedMsg(m.app.Cart.Add(m.ctx, movie, 1))
	}
}

func (m *Model) removeFromCart(id int) tea.Cmd {
	return func() tea.Msg {
		return cartChangedMsg(m.app.Cart.Remove(m.ctx, id))
	}
}

func (m *Model) clearCart() tea.Cmd {
	return func() tea.Msg {
		return cartChangedMsg(m.app.Cart.Clear(m.ctx))
	}
}

func (m *Model) logout() tea.Cmd {
	if !m.app.Session.Authenticated() {
		return nil
	}
	return func() tea.Msg {
		return cartChangedMsg(m.app.Session.Logout(m.ctx))
	}
}

func (m *Model) openLogin(then ViewState) tea.Cmd {
	m.afterLogin = then
	m.loginForm = newForm(
		field{label: "Email", placeholder: m.app.Config.Session.DemoEmail},
		field{label: "Password", placeholder: "password", secret: true},
	)
	m.view = LoginView
	return textinput.Blink
}

func (m *Model) login(email, password string) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelLogin = cancel
	m.signingIn = true

	return func() tea.Msg {
		defer cancel()
		user, err := m.app.Session.Login(ctx, email, password)
		return sessionChangedMsg(user, err)
	}
}

func (m *Model) prefillPayment(user models.User) {
	m.payForm = newForm(
		field{label: "Full name", placeholder: "Jane Doe"},
		field{label: "Email", placeholder: "jane@example.com"},
		field{label: "Card number", placeholder: "4242 4242 4242 4242", limit: cardFieldLimit},
		field{label: "Name on card", placeholder: "Jane Doe"},
		field{label: "Expiry", placeholder: "MM/YY", limit: 5},
		field{label: "CVV", placeholder: "123", limit: 4, secret: true},
	)
	m.payForm.set(payFullName, user.Name)
	m.payForm.set(payEmail, user.Email)
}

// paymentValues reads the checkout form, regrouping the card number in place when it fits.
func (m *Model) paymentValues() (checkout.Contact, checkout.Payment) {
	number := checkout.FormatCardNumber(m.payForm.value(payCardNumber))
	if len(number) <= cardFieldLimit {
		m.payForm.set(payCardNumber, number)
	}

	contact := checkout.Contact{
		FullName: m.payForm.value(payFullName),
		Email:    m.payForm.value(payEmail),
	}
	payment := checkout.Payment{
		CardNumber: number,
		CardName:   m.payForm.value(payCardName),
		Expiry:     m.payForm.value(payExpiry),
		CVV:        m.payForm.value(payCVV),
	}
	return contact, payment
}

func (m *Model) startCheckout(contact checkout.Contact, payment checkout.Payment) tea.Cmd {
	progress := make(chan checkout.ProgressUpdate, 16)
	m.progressChan = progress
	m.progress = checkout.ProgressUpdate{}

	done := func() tea.Msg {
		order, err := m.app.Checkout.Complete(m.ctx, contact, payment, progress)
		close(progress)
		return checkoutCompleteMsg(order, err)
	}
	return tea.Batch(done, m.waitForProgress())
}

// waitForProgress reads one update; a closed channel ends the loop and the completion message takes over.
func (m *Model) waitForProgress() tea.Cmd {
	progress := m.progressChan
	if progress == nil {
		return nil
	}
	return func() tea.Msg {
		update, ok := <-progress
		if !ok {
			return nil
		}
		return progressUpdateMsg(update)
	}
}

// pullStatus moves the newest notification into the status line.
func (m *Model) pullStatus() {
	messages := m.notes.Drain()
	if len(messages) == 0 {
		return
	}
	m.status = messages[len(messages)-1]
	m.hasStatus = true
}

func (m *Model) setError(err error) {
	m.status = notify.Message{Level: notify.Error, Text: err.Error()}
	m.hasStatus = true
}

func (m *Model) refreshCatalog() {
	movies := m.app.Catalog.List()
	items := make([]list.Item, len(movies))
	for i, mv := range movies {
		items[i] = movieItem{movie: mv, owned: m.app.Session.IsOwned(mv.ID)}
	}
	m.catalogList.SetItems(items)
}

func (m *Model) refreshCart() {
	lines := m.app.Cart.Items()
	items := make([]list.Item, len(lines))
	for i, l := range lines {
		items[i] = lineItem{line: l}
	}
	m.cartList.SetItems(items)
	m.cartList.Title = fmt.Sprintf("Cart (%d items)", m.app.Cart.ItemCount())
}

func (m *Model) renderCatalog() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.add, m.keys.cart}
	if m.app.Session.Authenticated() {
		helpKeys = append(helpKeys, m.keys.logout)
	} else {
		helpKeys = append(helpKeys, m.keys.login)
	}
	helpKeys = append(helpKeys, m.keys.quit)
	return fmt.Sprintf("%s\n%s\n\n%s", m.renderHeader(), m.catalogList.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderDetail() string {
	mv := m.selected
	title := styles.title.Render(fmt.Sprintf("%s (%d)", mv.Title, mv.Year()))

	rows := []string{
		styles.label.Render("Rating") + fmt.Sprintf(" %.1f/10", mv.VoteAverage),
		styles.label.Render("Runtime") + " " + formatter.FormatRuntime(mv.Runtime),
		styles.label.Render("Genres") + " " + strings.Join(mv.Genres, ", "),
		styles.label.Render("Director") + " " + mv.Director,
		styles.label.Render("Starring") + " " + strings.Join(mv.Starring, ", "),
		styles.label.Render("Price") + " " + styles.price.Render(formatter.FormatCurrency(mv.Price)),
	}

	var state string
	switch {
	case m.app.Session.IsOwned(mv.ID):
		state = styles.ok.Render("In your library")
	case m.app.Cart.Contains(mv.ID):
		state = styles.warn.Render(fmt.Sprintf("In cart (%d)", m.app.Cart.Quantity(mv.ID)))
	}

	overview := lipgloss.NewStyle().Width(max(m.width-8, 40)).Render(mv.Overview)
	helpKeys := []key.Binding{m.keys.add, m.keys.cart, m.keys.back, m.keys.quit}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n\n%s",
		title, strings.Join(rows, "\n"), overview, state, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderCart() string {
	summary := m.app.Checkout.Summary()
	totals := styles.box.Render(fmt.Sprintf("Subtotal %s\nTax      %s\nTotal    %s",
		formatter.FormatCurrency(summary.Subtotal),
		formatter.FormatCurrency(summary.Tax),
		styles.price.Render(formatter.FormatCurrency(summary.Total)),
	))

	helpKeys := []key.Binding{m.keys.remove, m.keys.clear, m.keys.checkout, m.keys.back, m.keys.quit}
	if m.app.Cart.Len() == 0 {
		return fmt.Sprintf("%s\n\n%s\n\n%s", styles.title.Render("Your cart is empty"), styles.help.Render("Add movies from the catalog with a"), m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit}))
	}
	return fmt.Sprintf("%s\n%s\n\n%s", m.cartList.View(), totals, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Sign in")
	if m.signingIn || m.app.Session.Pending() {
		return fmt.Sprintf("%s\n%s Signing in...\n\n%s", title, m.spinner.View(), m.help.ShortHelpView([]key.Binding{m.keys.back}))
	}

	hint := styles.help.Render(fmt.Sprintf("Demo account: %s / %s", m.app.Config.Session.DemoEmail, m.app.Config.Session.DemoPassword))
	helpKeys := []key.Binding{m.keys.next, m.keys.submit, m.keys.back}
	return fmt.Sprintf("%s\n%s\n%s\n\n%s", title, m.loginForm.view(), hint, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderCheckout() string {
	summary := m.app.Checkout.Summary()
	title := styles.title.Render(fmt.Sprintf("Checkout • %d items • %s", summary.Items, formatter.FormatCurrency(summary.Total)))

	var errLine string
	if m.formErr != "" {
		errLine = "\n" + styles.err.Render(m.formErr) + "\n"
	}

	helpKeys := []key.Binding{m.keys.next, m.keys.prev, m.keys.submit, m.keys.back}
	return fmt.Sprintf("%s\n%s%s\n%s", title, m.payForm.view(), errLine, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderProcessing() string {
	title := styles.title.Render("Completing Purchase")

	var phase string
	switch m.progress.Phase {
	case checkout.Validate:
		phase = "Checking order..."
	case checkout.Process:
		phase = "Processing payment..."
	case checkout.Record:
		phase = fmt.Sprintf("Adding to library (%d/%d)", m.progress.Step, m.progress.Total)
	case checkout.Done:
		phase = "Done"
	}

	return fmt.Sprintf("%s\n\n%s %s\n%s", title, m.spinner.View(), phase, styles.help.Render(m.progress.Message))
}

func (m *Model) renderResult() string {
	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	if m.orderErr != nil {
		return styles.err.Render(fmt.Sprintf("Checkout failed: %v", m.orderErr)) + "\n\n" + m.help.ShortHelpView(helpKeys)
	}
	if m.order == nil {
		return styles.err.Render("No order available") + "\n\n" + m.help.ShortHelpView(helpKeys)
	}

	title := styles.ok.Render("✓ Purchase complete!")
	return fmt.Sprintf("%s\n\n%s\n%s", title, formatter.OrderReceipt(m.order), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderHeader() string {
	who := "Guest"
	if user, ok := m.app.Session.User(); ok {
		who = user.Name
	}
	return styles.help.Render(fmt.Sprintf("%s • cart %d • owned %d", who, m.app.Cart.ItemCount(), len(m.app.Session.Purchases())))
}

func (m *Model) renderStatus() string {
	if !m.hasStatus {
		return ""
	}
	if m.status.Level == notify.Error {
		return styles.err.Render(m.status.Text)
	}
	return styles.ok.Render(m.status.Text)
}
