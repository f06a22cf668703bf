package command

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"parkdesk/internal/entities"
	"parkdesk/internal/prefs"
	"parkdesk/internal/query"
)

type listFlags struct {
	search   string
	status   string
	lot      string
	user     string
	sort     string
	dir      string
	page     int
	pageSize int
	asJSON   bool
}

func newListCmd() *cobra.Command {
	flags := listFlags{dir: string(query.Ascending)}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reservations through the query pipeline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.search, "search", "", "substring match on id, lot name or user name")
	cmd.Flags().StringVar(&flags.status, "status", "", "exact status filter (PENDING, CONFIRMED, ACTIVE, COMPLETED, CANCELLED)")
	cmd.Flags().StringVar(&flags.lot, "lot", "", "exact lot id filter")
	cmd.Flags().StringVar(&flags.user, "user", "", "exact user id filter")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort column (id, userName, lotName, spaceNumber, status, checkInDateTime, checkOutDateTime)")
	cmd.Flags().StringVar(&flags.dir, "dir", flags.dir, "sort direction (asc, desc, none)")
	cmd.Flags().IntVar(&flags.page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "rows per page (defaults to PARKDESK_PAGE_SIZE)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the page as JSON")
	return cmd
}

func runList(cmd *cobra.Command, flags listFlags) error {
	ctx := cmd.Context()
	st := newStore()

	pageSize := flags.pageSize
	if pageSize <= 0 {
		pageSize = envPageSize()
	}
	view := query.NewView(pageSize)
	if err := view.Refresh(ctx, st); err != nil {
		return err
	}

	view.SetSearch(flags.search)
	if flags.status != "" {
		status := entities.ReservationStatus(flags.status)
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", flags.status)
		}
		view.SetStatusFilter(&status)
	}
	if flags.lot != "" {
		view.SetLotFilter(&flags.lot)
	}
	if flags.user != "" {
		view.SetUserFilter(&flags.user)
	}
	if flags.sort != "" {
		view.SetSort(query.Sort{Key: query.SortKey(flags.sort), Direction: query.Direction(flags.dir)})
	}
	view.SetPage(flags.page)

	page := view.Page()
	if flags.asJSON {
		raw, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	}

	lots, err := st.ListParkingLots(ctx)
	if err != nil {
		return err
	}
	users, err := st.ListUsers(ctx)
	if err != nil {
		return err
	}
	printPage(cmd, page, view.State(), query.NewLotLookup(lots), query.NewUserLookup(users))
	return nil
}

func printPage(cmd *cobra.Command, page query.Page, st query.State, lotNames, userNames query.NameLookup) {
	columns := prefs.Load(envPrefsFile()).Ordered()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, r := range page.Rows {
		for i, col := range columns {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell(r, col, lotNames, userNames))
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	first, last := 0, 0
	if len(page.Rows) > 0 {
		first = st.PageIndex*st.PageSize + 1
		last = first + len(page.Rows) - 1
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Showing %d-%d of %d\n", first, last, page.Total)
}

func cell(r entities.Reservation, column string, lotNames, userNames query.NameLookup) string {
	switch column {
	case "id":
		return r.ID
	case "userName":
		return userNames.Resolve(r.UserID)
	case "lotName":
		return lotNames.Resolve(r.LotID)
	case "spaceNumber":
		return r.SpaceID
	case "checkInDateTime":
		return r.CheckInDateTime.Format("2006-01-02 15:04")
	case "checkOutDateTime":
		return r.CheckOutDateTime.Format("2006-01-02 15:04")
	case "status":
		return string(r.Status)
	case "totalCost":
		return strconv.FormatFloat(r.TotalCost, 'f', 2, 64)
	default:
		return ""
	}
}
