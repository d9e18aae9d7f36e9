// Package report formats a mining Output as CSV or human-readable text, a
// direct generalization of the teacher's itemset/rule CSV writers to the
// apriori.Item interface and the new AssociationRule/Metric shapes.
package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/RiceaRaul/apriori"
)

// WriteItemsetsCSV writes every frequent item set to filePath as
// "support,itemset,length" rows.
func WriteItemsetsCSV(itemsets *apriori.ItemSetMap, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filePath, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"support", "itemset", "length"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, set := range itemsets.All() {
		row := []string{
			fmt.Sprintf("%.6f", set.Support()),
			set.String(),
			fmt.Sprintf("%d", set.Len()),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing itemset row: %w", err)
		}
	}
	return nil
}

// WriteRulesCSV writes every rule to filePath as
// "body,head,support,confidence,lift,leverage,conviction,interval" rows.
func WriteRulesCSV(rules *apriori.RuleSet, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filePath, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"body", "head", "support", "confidence", "lift", "leverage", "conviction", "interval"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rule := range rules.Rules() {
		conviction := fmt.Sprintf("%.6f", rule.Conviction)
		if math.IsInf(rule.Conviction, 1) {
			conviction = "inf"
		}
		interval := ""
		if rule.Interval != nil {
			interval = fmt.Sprintf("[%d,%d]", rule.Interval.Start, rule.Interval.End)
		}
		row := []string{
			rule.Body.String(),
			rule.Head.String(),
			fmt.Sprintf("%.6f", rule.Support),
			fmt.Sprintf("%.6f", rule.Confidence),
			fmt.Sprintf("%.6f", rule.Lift),
			fmt.Sprintf("%.6f", rule.Leverage),
			conviction,
			interval,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing rule row: %w", err)
		}
	}
	return nil
}

// ItemsetsSummary renders a one-line-per-length count of frequent item
// sets, e.g. "length 1: 4, length 2: 3".
func ItemsetsSummary(itemsets *apriori.ItemSetMap) string {
	counts := make(map[int]int)
	maxLen := 0
	for _, set := range itemsets.All() {
		counts[set.Len()]++
		if set.Len() > maxLen {
			maxLen = set.Len()
		}
	}
	parts := make([]string, 0, maxLen)
	for l := 1; l <= maxLen; l++ {
		if counts[l] > 0 {
			parts = append(parts, fmt.Sprintf("length %d: %d", l, counts[l]))
		}
	}
	return strings.Join(parts, ", ")
}
