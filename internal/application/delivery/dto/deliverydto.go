// Package dto holds the wire representations of deliveries.
package dto

import (
	"time"

	"entregas/internal/domain/delivery"
	"entregas/internal/domain/worker"
)

// DeliveryDTO is the list/detail representation of a delivery. Worker names
// are resolved from the worker registry by RUT. Signature payloads live only
// in the audit log, so tiene_firma is always false on the delivery itself.
type DeliveryDTO struct {
	ID           uint   `json:"id"`
	RUT          string `json:"rut"`
	FirstName    string `json:"nombre"`
	Surname      string `json:"apellido"`
	DeliveredAt  string `json:"fecha_entrega"`
	BenefitCode  string `json:"beneficio_cod"`
	PeriodCode   string `json:"periodo_cod"`
	Status       string `json:"estado"`
	HasSignature bool   `json:"tiene_firma"`
}

// DeliveryDetailDTO is the single-delivery representation. The signature
// field is always null; it exists for wire compatibility with older clients.
type DeliveryDetailDTO struct {
	DeliveryDTO
	SignatureBase64 *string `json:"firma_base64"`
}

// FromDelivery builds the wire representation. w may be nil when the worker
// row is gone; the names are then left empty.
func FromDelivery(d *delivery.Delivery, w *worker.Worker) DeliveryDTO {
	out := DeliveryDTO{
		ID:           d.ID(),
		RUT:          d.RUT(),
		DeliveredAt:  d.DeliveredAt().Format(time.RFC3339),
		BenefitCode:  d.BenefitCode(),
		PeriodCode:   d.PeriodCode(),
		Status:       string(d.Status()),
		HasSignature: false,
	}
	if w != nil {
		out.FirstName = w.FirstName()
		out.Surname = w.Surname()
	}
	return out
}

func DetailFromDelivery(d *delivery.Delivery, w *worker.Worker) DeliveryDetailDTO {
	return DeliveryDetailDTO{
		DeliveryDTO:     FromDelivery(d, w),
		SignatureBase64: nil,
	}
}

// FromDeliveries maps a page of deliveries, resolving names through the
// workers map keyed by RUT.
func FromDeliveries(deliveries []*delivery.Delivery, workers map[string]*worker.Worker) []DeliveryDTO {
	items := make([]DeliveryDTO, 0, len(deliveries))
	for _, d := range deliveries {
		items = append(items, FromDelivery(d, workers[d.RUT()]))
	}
	return items
}
