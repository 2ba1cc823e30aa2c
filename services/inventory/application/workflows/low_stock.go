// Package workflows runs the automatic reorder of critical inventory on
// Temporal.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	catalogdomain "github.com/sevakart/marketplace/services/catalog/domain"
	appsvcs "github.com/sevakart/marketplace/services/inventory/application/services"
	inventorydomain "github.com/sevakart/marketplace/services/inventory/domain"
)

// LowStockReorderWorkflowName is the registered workflow type.
const LowStockReorderWorkflowName = "LowStockReorderWorkflow"

// Non-retryable application error types raised by the activity.
const (
	errTypeProductNotFound = "ProductNotFound"
	errTypeItemNotFound    = "InventoryItemNotFound"
)

// LowStockReorderInput identifies the item that went critical.
type LowStockReorderInput struct {
	VendorID uuid.UUID
	ItemID   uuid.UUID
	ItemName string
	Quantity int
}

// LowStockReorderResult is what the workflow did.
type LowStockReorderResult struct {
	OrderID uuid.UUID
	Updated bool
	Skipped bool // stock recovered before the activity ran
}

// LowStockReorderWorkflow places or updates the order that restocks one
// critical inventory item.
func LowStockReorderWorkflow(ctx workflow.Context, in LowStockReorderInput) (LowStockReorderResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{errTypeProductNotFound, errTypeItemNotFound},
		},
	})

	var acts *Activities
	var res LowStockReorderResult
	if err := workflow.ExecuteActivity(ctx, acts.ReorderItem, in).Get(ctx, &res); err != nil {
		return LowStockReorderResult{}, err
	}
	workflow.GetLogger(ctx).Info("low stock reorder finished",
		"item_id", in.ItemID.String(), "order_id", res.OrderID.String(), "skipped", res.Skipped)
	return res, nil
}

// Activities holds the dependencies of the workflow's activities.
type Activities struct {
	Inventory *appsvcs.InventoryService
}

// ReorderItem runs the inventory reorder for in.
func (a *Activities) ReorderItem(ctx context.Context, in LowStockReorderInput) (LowStockReorderResult, error) {
	res, err := a.Inventory.Reorder(ctx, in.VendorID, in.ItemID, in.Quantity)
	switch {
	case errors.Is(err, inventorydomain.ErrReorderNotNeeded):
		return LowStockReorderResult{Skipped: true}, nil
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return LowStockReorderResult{}, temporal.NewNonRetryableApplicationError(err.Error(), errTypeProductNotFound, err)
	case errors.Is(err, inventorydomain.ErrInventoryItemNotFound):
		return LowStockReorderResult{}, temporal.NewNonRetryableApplicationError(err.Error(), errTypeItemNotFound, err)
	case err != nil:
		return LowStockReorderResult{}, err
	}
	return LowStockReorderResult{OrderID: res.Order.ID, Updated: res.Updated}, nil
}

// Register adds the workflow and its activities to a worker.
func Register(w worker.Registry, acts *Activities) {
	w.RegisterWorkflowWithOptions(LowStockReorderWorkflow, workflow.RegisterOptions{Name: LowStockReorderWorkflowName})
	w.RegisterActivity(acts)
}

// WorkflowID is one running reorder per item.
func WorkflowID(itemID uuid.UUID) string {
	return "low-stock-reorder-" + itemID.String()
}

// StartLowStockReorder starts the workflow for in. A reorder already
// running for the same item is left alone.
func StartLowStockReorder(ctx context.Context, c client.Client, taskQueue string, in LowStockReorderInput) error {
	_, err := c.ExecuteWorkflow(ctx, startOptions(taskQueue, in.ItemID), LowStockReorderWorkflowName, in)
	if err = ignoreAlreadyStarted(err); err != nil {
		return fmt.Errorf("start %s: %w", LowStockReorderWorkflowName, err)
	}
	return nil
}

// startOptions makes the server refuse a second run for the same item
// instead of handing back the running one.
func startOptions(taskQueue string, itemID uuid.UUID) client.StartWorkflowOptions {
	return client.StartWorkflowOptions{
		ID:                                       WorkflowID(itemID),
		TaskQueue:                                taskQueue,
		WorkflowExecutionTimeout:                 10 * time.Minute,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}
}

func ignoreAlreadyStarted(err error) error {
	var started *serviceerror.WorkflowExecutionAlreadyStarted
	if errors.As(err, &started) {
		return nil
	}
	return err
}
