package internal

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"persona-emails/auth"
	"persona-emails/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// InspectRow is one line of a store dump.
type InspectRow struct {
	Key    string
	Type   string
	Date   string
	ID     string
	Detail string
}

type RowMapper func(key string, val []byte) InspectRow

var inspectHeader = []string{"Key", "Type", "Date", "ID", "Detail"}

// Scan maps every key under prefix. Values that fail to decode are shown raw.
func Scan(db *badger.DB, prefix string, mapper RowMapper) ([]InspectRow, error) {
	if mapper == nil {
		mapper = DefaultMapper
	}
	var rows []InspectRow
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if err := item.Value(func(val []byte) error {
				rows = append(rows, mapper(key, val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	return rows, err
}

// WriteTable renders rows the way the inspect tool prints them.
func WriteTable(w io.Writer, rows []InspectRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(inspectHeader)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, row := range rows {
		table.Append([]string{row.Key, row.Type, row.Date, row.ID, row.Detail})
	}
	table.Render()
}

// InspectHandler dumps the store as a text table, ?prefix= narrows the scan.
// Only a bearer token carrying the admin role may read it.
func InspectHandler(db *badger.DB, resolver auth.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := resolver.Resolve(r.Context(), auth.CallContext{
			Origin:        auth.OriginUser,
			Authorization: r.Header.Get("Authorization"),
		})
		if err != nil {
			http.Error(w, "unauthenticated", http.StatusUnauthorized)
			return
		}
		if identity, ok := auth.IdentityFromContext(ctx); !ok || !auth.HasRole(identity, auth.RoleAdmin) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "email:"
		}
		rows, err := Scan(db, prefix, DefaultMapper)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		WriteTable(w, rows)
	}
}

// DefaultMapper knows the key layouts of the email and persona repositories.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:    key,
		Type:   "RAW",
		Date:   "-",
		ID:     "-",
		Detail: "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	switch {
	case strings.HasPrefix(key, "email:"):
		email, err := repositories.DecodeEmail(val)
		if err != nil {
			return row
		}
		row.Type = "EMAIL"
		row.ID = email.ID
		row.Date = email.Date.Format(time.RFC3339)
		row.Detail = fmt.Sprintf("%q to %s read=%t", email.Subject, strings.Join(email.Recipients(), ","), email.Read)
	case strings.HasPrefix(key, "to:"):
		// to:{address}:{date}:{id}
		parts := strings.Split(key, ":")
		if len(parts) < 4 {
			return row
		}
		n := len(parts)
		row.Type = "INDEX"
		row.Detail = strings.Join(parts[1:n-2], ":")
		row.ID = parts[n-1]
		if shifted, err := strconv.ParseUint(parts[n-2], 10, 64); err == nil {
			row.Date = time.UnixMilli(int64(shifted ^ (1 << 63))).UTC().Format(time.RFC3339)
		}
	case strings.HasPrefix(key, "persona-email:"):
		row.Type = "PERSONA INDEX"
		row.ID = string(val)
		row.Detail = strings.TrimPrefix(key, "persona-email:")
	case strings.HasPrefix(key, "persona:"):
		persona, err := repositories.DecodePersona(val)
		if err != nil {
			return row
		}
		row.Type = "PERSONA"
		row.ID = persona.ID
		row.Detail = fmt.Sprintf("%s uid=%s", persona.Email, persona.UID)
	}
	return row
}
