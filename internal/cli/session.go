package cli

import (
	"context"
	"fmt"
)

// sessionLoop runs the authenticated menu until logout. Each action
// is isolated: failures are reported and the loop continues.
func (a *App) sessionLoop(ctx context.Context) error {
	defer a.logout()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintln(a.out, "MAIN MENU")
		fmt.Fprintln(a.out, "---------")
		fmt.Fprintln(a.out, "1. View Profile")
		fmt.Fprintln(a.out, "2. Update Profile")
		fmt.Fprintln(a.out, "3. View Menu")
		fmt.Fprintln(a.out, "4. Place Order")
		fmt.Fprintln(a.out, "5. View Full Order ID History")
		fmt.Fprintln(a.out, "6. View Past 5 Order IDs")
		fmt.Fprintln(a.out, "7. View Order Information")
		fmt.Fprintln(a.out, "8. View Stores")
		fmt.Fprintln(a.out, "9. Update Order Status")
		fmt.Fprintln(a.out, "10. Update Menu")
		fmt.Fprintln(a.out, "11. Update User")
		fmt.Fprintln(a.out, ".........................")
		fmt.Fprintln(a.out, "20. Log out")

		choice, err := ReadChoice(a.reader, a.out)
		if err != nil {
			return nil
		}

		switch choice {
		case 1:
			a.viewProfile(ctx)
		case 2:
			a.updateProfile(ctx)
		case 3:
			a.viewMenu(ctx)
		case 4:
			a.reportError(a.orderSvc.PlaceOrder(ctx, a.session), "")
		case 5:
			a.reportError(a.orderSvc.ViewAllOrders(ctx, a.session), "")
		case 6:
			a.reportError(a.orderSvc.ViewRecentOrders(ctx, a.session), "")
		case 7:
			a.viewOrderInfo(ctx)
		case 8:
			a.reportError(a.orderSvc.ViewStores(ctx), "")
		case 9:
			a.reportError(a.orderSvc.UpdateOrderStatus(ctx, a.session), "")
		case 10:
			a.reportError(a.menuSvc.UpdateMenu(ctx), "")
		case 11:
			a.updateUser(ctx)
		case 20:
			return nil
		default:
			fmt.Fprintln(a.out, "Unrecognized choice!")
		}
	}
}

func (a *App) viewOrderInfo(ctx context.Context) {
	orderID, err := ReadLine(a.reader, "Enter order ID: ", a.out)
	if err != nil {
		return
	}
	a.reportError(a.orderSvc.ViewOrderInfo(ctx, a.session, orderID), "")
}
