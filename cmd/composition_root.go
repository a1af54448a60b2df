package cmd

import (
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// NewHTTPServer wires every command and query handler into the HTTP adapter.
func (c *CompositionRoot) NewHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateDelivery:     commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory()),
		MarkReady:          commands.NewMarkReadyCommandHandler(c.deliveryUoWFactory()),
		MarkScheduled:      commands.NewMarkScheduledCommandHandler(c.deliveryUoWFactory()),
		MarkOutForDelivery: commands.NewMarkOutForDeliveryCommandHandler(c.deliveryUoWFactory()),
		MarkDelivered:      commands.NewMarkDeliveredCommandHandler(c.deliveryUoWFactory()),
		ConfirmReceipt:     commands.NewConfirmReceiptCommandHandler(c.deliveryUoWFactory()),
		ReportIssue:        commands.NewReportIssueCommandHandler(c.deliveryUoWFactory()),
		CancelDelivery:     commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory()),
		RequestReschedule:  commands.NewRequestRescheduleCommandHandler(c.deliveryUoWFactory()),
		ApproveReschedule:  commands.NewApproveRescheduleCommandHandler(c.deliveryUoWFactory()),
		RejectReschedule:   commands.NewRejectRescheduleCommandHandler(c.deliveryUoWFactory()),
		ListDeliveries:     queries.NewGetDeliveriesForActorQueryHandler(c.gormDB),
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
