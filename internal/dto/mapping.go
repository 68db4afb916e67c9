package dto

import "github.com/nexilab/agent-credit/internal/domain"

func NewAgentUserResponse(u *domain.AgentUser) AgentUserResponseDTO {
	return AgentUserResponseDTO{
		ID:        u.ID,
		Mobile:    u.Mobile,
		Email:     u.Email,
		Name:      u.Name,
		Credit:    u.Credit,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewEventResponse(e *domain.CreditEvent) EventResponseDTO {
	return EventResponseDTO{
		ID:        e.ID,
		EventType: e.EventType,
		TargetID:  e.TargetID,
		EventData: EventPayloadDTO{
			Amount:          e.Payload.Amount,
			PreviousBalance: e.Payload.PreviousBalance,
			NewBalance:      e.Payload.NewBalance,
			Count:           e.Payload.Count,
			ConsumableName:  e.Payload.ConsumableName,
			PurchasableName: e.Payload.PurchasableName,
			RefundEventID:   e.Payload.RefundEventID,
		},
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		Timestamp:   e.Timestamp,
	}
}

func NewEventsListResponse(events []domain.CreditEvent, total int) EventsListResponseDTO {
	out := EventsListResponseDTO{
		Events: make([]EventResponseDTO, 0, len(events)),
		Total:  total,
	}
	for i := range events {
		out.Events = append(out.Events, NewEventResponse(&events[i]))
	}
	return out
}

func NewConsumableResponse(c *domain.Consumable) ConsumableResponseDTO {
	return ConsumableResponseDTO{
		ID:        c.ID,
		Name:      c.Name,
		Cost:      c.Cost,
		Metadata:  c.Metadata,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewPurchasableResponse(p *domain.Purchasable) PurchasableResponseDTO {
	return PurchasableResponseDTO{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		CreditAmount: p.CreditAmount,
		Metadata:     p.Metadata,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func NewCMSUserResponse(u *domain.CMSUser) CMSUserResponseDTO {
	return CMSUserResponseDTO{
		Mobile:    u.Mobile,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
