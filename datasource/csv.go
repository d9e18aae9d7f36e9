package datasource

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/RiceaRaul/apriori"
)

// basketTransaction is a transaction built from a CSV basket: a
// deduplicated list of StringItems plus an optional interval parsed from a
// third column.
type basketTransaction struct {
	items    []apriori.Item
	interval apriori.TimeInterval
	hasTime  bool
}

func (t basketTransaction) Items() []apriori.Item { return t.items }

func (t basketTransaction) TimeInterval() (apriori.TimeInterval, bool) {
	return t.interval, t.hasTime
}

// LoadCSV reads a two- or three-column CSV of (basket, item[, timestamp])
// rows into a replayable apriori.TransactionSource, grouping rows by basket
// and deduplicating items within a basket. It is a direct generalization of
// a basket/item loader: header sniffing (a first row containing "basket" or
// "item" is skipped), variable column counts, and blank-field skipping all
// carry over.
func LoadCSV(filePath string) (apriori.TransactionSource, []string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	type basket struct {
		items     []string
		timestamp int64
		hasTime   bool
	}
	baskets := make(map[string]*basket)
	order := make([]string, 0)
	uniqueItems := make(map[string]bool)

	for i, record := range records {
		if i == 0 && looksLikeHeader(record) {
			continue
		}
		if len(record) < 2 {
			continue
		}

		id := strings.TrimSpace(record[0])
		item := strings.TrimSpace(record[1])
		if id == "" || item == "" {
			continue
		}

		b, ok := baskets[id]
		if !ok {
			b = &basket{}
			baskets[id] = b
			order = append(order, id)
		}
		b.items = append(b.items, item)
		uniqueItems[item] = true

		if len(record) >= 3 {
			if ts, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64); err == nil {
				b.timestamp = ts
				b.hasTime = true
			}
		}
	}

	transactions := make([]apriori.Transaction, 0, len(order))
	for _, id := range order {
		b := baskets[id]
		seen := make(map[string]bool, len(b.items))
		items := make([]apriori.Item, 0, len(b.items))
		for _, it := range b.items {
			if seen[it] {
				continue
			}
			seen[it] = true
			items = append(items, StringItem(it))
		}
		tx := basketTransaction{items: items}
		if b.hasTime {
			tx.interval = apriori.NewTimeInterval(b.timestamp, b.timestamp)
			tx.hasTime = true
		}
		transactions = append(transactions, tx)
	}

	itemList := make([]string, 0, len(uniqueItems))
	for it := range uniqueItems {
		itemList = append(itemList, it)
	}
	sort.Strings(itemList)

	return apriori.NewSliceSource(transactions), itemList, nil
}

func looksLikeHeader(record []string) bool {
	if len(record) < 2 {
		return false
	}
	return strings.Contains(strings.ToLower(record[0]), "basket") ||
		strings.Contains(strings.ToLower(record[1]), "item")
}
