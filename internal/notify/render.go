package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

// ProductNamePlaceholder is replaced in the applicant confirmation template.
const ProductNamePlaceholder = "{productName}"

const awaitingConfirmationSubject = "您的委托申请已通过初审！"

//go:embed templates/*.html
var templateFS embed.FS

type adminView struct {
	Heading string
	Intro   string
	Order   model.Order
	Reason  string
	Link    string
}

// Renderer builds email subjects and bodies for order events.
type Renderer struct {
	tpl     *template.Template
	baseURL string
}

// NewRenderer parses the embedded templates. Admin links point at baseURL.
func NewRenderer(baseURL string) (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &Renderer{tpl: tpl, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// AdminLink is the back-office edit page of the order.
func (r *Renderer) AdminLink(orderID string) string {
	return r.baseURL + "/admin/orders/edit/" + orderID
}

// Admin renders the back-office notification for event.
func (r *Renderer) Admin(event model.OrderEvent) (subject, body string, err error) {
	view := adminView{Order: event.Order, Reason: event.Reason, Link: r.AdminLink(event.Order.ID)}

	var name string
	switch event.Kind {
	case model.EventAdoptionApplied:
		name = "admin_application"
		view.Heading = "新的领养申请"
		view.Intro = "您收到了一个新的设定领养申请。"
		subject = "[新领养申请] " + event.Order.ProductName
	case model.EventCommissionApplied:
		name = "admin_application"
		view.Heading = "新的委托申请"
		view.Intro = "您收到了一个新的委托申请。"
		subject = "[新委托申请] " + event.Order.ProductName
	case model.EventCancellationRequested:
		name = "admin_cancellation"
		subject = "[取消申请] 用户申请取消订单 #" + event.Order.OrderNumber
	case model.EventOrderConfirmed:
		name = "admin_confirmed"
		subject = "[订单已确认] 用户已确认订单 #" + event.Order.OrderNumber
	default:
		return "", "", fmt.Errorf("no admin template for %s", event.Kind)
	}

	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, view); err != nil {
		return "", "", fmt.Errorf("render %s: %w", name, err)
	}
	return subject, buf.String(), nil
}

// AwaitingConfirmation fills the operator-supplied template with the
// escaped product name.
func (r *Renderer) AwaitingConfirmation(tpl string, order model.Order) (subject, body string) {
	return awaitingConfirmationSubject, strings.ReplaceAll(tpl, ProductNamePlaceholder, html.EscapeString(order.ProductName))
}
