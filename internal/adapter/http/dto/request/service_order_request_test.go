package request

import (
	"testing"

	"oficina_os/internal/domain/entities"
)

func TestServiceOrderRequest_ResolveType(t *testing.T) {
	r := ServiceOrderRequest{Type: "  Servico "}
	if got := r.ResolveType(); got != entities.OrderTypeServico {
		t.Fatalf("expected servico, got %q", got)
	}

	r2 := ServiceOrderRequest{Type: "MANUTENCAO"}
	if got := r2.ResolveType(); got != entities.OrderTypeManutencao {
		t.Fatalf("expected manutencao, got %q", got)
	}

	r3 := ServiceOrderRequest{Type: "reparo"}
	if got := r3.ResolveType(); got.Valid() {
		t.Fatalf("expected invalid type, got %q", got)
	}
}

func TestServiceOrderRequest_ResolveItems(t *testing.T) {
	catalogID := int64(7)
	r := ServiceOrderRequest{
		Items: []OrderItemRequest{
			{CatalogItemID: &catalogID, Quantity: 1, UnitPrice: 50},
			{Description: "  solda no escapamento  ", Quantity: 2, UnitPrice: 30},
		},
	}

	items := r.ResolveItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].CatalogItemID == nil || *items[0].CatalogItemID != 7 {
		t.Fatalf("unexpected catalog ref: %+v", items[0])
	}
	if items[1].Description != "solda no escapamento" {
		t.Fatalf("expected trimmed description, got %q", items[1].Description)
	}
	if items[1].LineTotal() != 60 {
		t.Fatalf("expected line total 60, got %v", items[1].LineTotal())
	}
}

func TestServiceOrderUpdateRequest_ResolveItems(t *testing.T) {
	r := ServiceOrderUpdateRequest{
		Items: []OrderItemRequest{{Description: "freios", Quantity: 1, UnitPrice: 200}},
	}

	items := r.ResolveItems()
	if len(items) != 1 || items[0].UnitPrice != 200 {
		t.Fatalf("unexpected items: %+v", items)
	}
}
