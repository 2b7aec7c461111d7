package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spec-kit/pizza-store/internal/domain"
	"github.com/spec-kit/pizza-store/internal/repository"
)

// viewMenu lists the full catalog, then optionally re-queries with a
// price ceiling, a type match, or both, with an ordering choice.
func (a *App) viewMenu(ctx context.Context) {
	items, err := a.menuSvc.ListItems(ctx, repository.ItemFilter{})
	if err != nil {
		a.reportError(err, "Error: Unable to view menu.")
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Menu is empty")
		return
	}
	a.printItems(items)

	answer, err := ReadLine(a.reader, "Would you like to filter your search? (Y/N) ", a.out)
	if err != nil || !strings.EqualFold(answer, "Y") {
		return
	}

	filter, ok := a.readFilter()
	if !ok {
		return
	}

	filtered, err := a.menuSvc.ListItems(ctx, filter)
	if err != nil {
		a.reportError(err, "Error: Unable to view menu.")
		return
	}
	if len(filtered) == 0 {
		fmt.Fprintln(a.out, "No items found")
		return
	}
	a.printItems(filtered)
}

// readFilter collects the predicate and sort choices. ok is false when
// input ended or the filter choice was invalid.
func (a *App) readFilter() (repository.ItemFilter, bool) {
	fmt.Fprintln(a.out, "Would you like to filter by price or type?")
	fmt.Fprintln(a.out, "1. Price")
	fmt.Fprintln(a.out, "2. Type")
	fmt.Fprintln(a.out, "3. Both")

	choice, err := ReadChoice(a.reader, a.out)
	if err != nil {
		return repository.ItemFilter{}, false
	}

	var filter repository.ItemFilter
	switch choice {
	case 1:
		price, err := ReadFloat(a.reader, "Enter maximum price: ", a.out)
		if err != nil {
			return filter, false
		}
		filter.MaxPrice = &price
	case 2:
		itemType, err := ReadLine(a.reader, "Enter type of item: ", a.out)
		if err != nil {
			return filter, false
		}
		filter.Type = &itemType
	case 3:
		itemType, err := ReadLine(a.reader, "Enter type of item: ", a.out)
		if err != nil {
			return filter, false
		}
		price, err := ReadFloat(a.reader, "Enter maximum price: ", a.out)
		if err != nil {
			return filter, false
		}
		filter.Type = &itemType
		filter.MaxPrice = &price
	default:
		fmt.Fprintln(a.out, "Invalid choice")
		return filter, false
	}

	sort, ok := a.readSortOrder()
	if !ok {
		return filter, false
	}
	filter.Sort = sort
	return filter, true
}

func (a *App) readSortOrder() (repository.SortOrder, bool) {
	fmt.Fprintln(a.out, "Would you like to sort by highest to lowest price or lowest to highest price?")
	fmt.Fprintln(a.out, "1. Highest to lowest")
	fmt.Fprintln(a.out, "2. Lowest to highest")
	fmt.Fprintln(a.out, "3. Neither")

	choice, err := ReadChoice(a.reader, a.out)
	if err != nil {
		return repository.SortNone, false
	}
	switch choice {
	case 1:
		return repository.SortDescending, true
	case 2:
		return repository.SortAscending, true
	default:
		return repository.SortNone, true
	}
}

func (a *App) printItems(items []domain.Item) {
	for _, item := range items {
		fmt.Fprintln(a.out, "Item: "+item.Name)
		fmt.Fprintln(a.out, "Ingredients: "+item.Ingredients)
		fmt.Fprintln(a.out, "Type of Item: "+item.Type)
		fmt.Fprintf(a.out, "Price: %.2f\n", item.Price)
		fmt.Fprintln(a.out, "Description: "+item.Description)
		fmt.Fprintln(a.out, "-------------------------------------------------")
	}
}
