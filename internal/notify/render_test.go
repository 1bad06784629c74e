package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

func TestRendererAdminTemplates(t *testing.T) {
	r, err := NewRenderer("http://localhost:8080")
	require.NoError(t, err)
	order := sampleOrder()

	cases := []struct {
		kind        model.OrderEventKind
		subject     string
		mustContain []string
	}{
		{model.EventAdoptionApplied, "[新领养申请] Nova", []string{"新的领养申请", "Lin", "13800000000"}},
		{model.EventCommissionApplied, "[新委托申请] Nova", []string{"新的委托申请", "Lin"}},
		{model.EventCancellationRequested, "[取消申请] 用户申请取消订单 #S20240305123", []string{"user_1", "reason &lt;b&gt;"}},
		{model.EventOrderConfirmed, "[订单已确认] 用户已确认订单 #S20240305123", []string{order.Status.Label(), "user_1"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			subject, body, err := r.Admin(model.OrderEvent{Kind: tc.kind, Order: order, Reason: "reason <b>"})
			require.NoError(t, err)
			assert.Equal(t, tc.subject, subject)
			assert.Contains(t, body, "http://localhost:8080/admin/orders/edit/order_1")
			for _, s := range tc.mustContain {
				assert.Contains(t, body, s)
			}
		})
	}

	_, _, err = r.Admin(model.OrderEvent{Kind: model.EventAwaitingConfirmation, Order: order})
	assert.Error(t, err)
}

func TestRendererAdminTemplateWithoutApplication(t *testing.T) {
	r, err := NewRenderer("http://localhost:8080")
	require.NoError(t, err)
	order := sampleOrder()
	order.ApplicationData = nil

	_, body, err := r.Admin(model.OrderEvent{Kind: model.EventAdoptionApplied, Order: order})
	require.NoError(t, err)
	assert.Contains(t, body, "Nova")
}

func TestRendererAwaitingConfirmationEscapesProductName(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)
	order := sampleOrder()
	order.ProductName = "<Nova & Vega>"

	subject, body := r.AwaitingConfirmation("<p>{productName}</p><p>{productName}</p>", order)
	assert.Equal(t, awaitingConfirmationSubject, subject)
	assert.Equal(t, "<p>&lt;Nova &amp; Vega&gt;</p><p>&lt;Nova &amp; Vega&gt;</p>", body)
	assert.False(t, strings.Contains(body, ProductNamePlaceholder))
}
