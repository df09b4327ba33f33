/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datasets

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/suparena/datacombine/collection"
)

// dedupeUploads collapses the s3_list dataset to one entry per shapefile.
// A reprocessed shapefile appears once per attempt with a two-digit counter
// suffix ("..._017_01.zip", "..._017_02.zip"); only the highest attempt
// still exists remotely. Entries without a counter suffix pass through,
// minus exact duplicates. First-seen order is preserved.
func dedupeUploads(c collection.Collection) (collection.Collection, error) {
	list, ok := c.(*collection.List)
	if !ok {
		return nil, fmt.Errorf("s3_list: expected list collection, got %s", c.Shape())
	}

	type group struct {
		record  json.RawMessage
		counter int
	}
	var order []string
	groups := make(map[string]group)

	for _, record := range list.Records() {
		var entry string
		if err := json.Unmarshal(record, &entry); err != nil {
			return nil, fmt.Errorf("s3_list: entry %s is not a string: %w", record, err)
		}

		base, counter, ok := splitUploadCounter(entry)
		if !ok {
			// No counter suffix: group on the whole entry so exact
			// duplicates still collapse.
			base, counter = entry, -1
		}

		g, seen := groups[base]
		if !seen {
			order = append(order, base)
		}
		if !seen || counter > g.counter {
			groups[base] = group{record: record, counter: counter}
		}
	}

	out := collection.NewList()
	for _, base := range order {
		out.Append(groups[base].record)
	}
	return out, nil
}

// splitUploadCounter splits an upload name of the form "<base>NN.zip" into
// its base and two-digit attempt counter.
func splitUploadCounter(entry string) (base string, counter int, ok bool) {
	const suffixLen = len("00.zip")
	if len(entry) <= suffixLen || !strings.HasSuffix(entry, ".zip") {
		return "", 0, false
	}
	d1 := entry[len(entry)-suffixLen]
	d2 := entry[len(entry)-suffixLen+1]
	if d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
		return "", 0, false
	}
	base = entry[:len(entry)-suffixLen]
	counter = int(d1-'0')*10 + int(d2-'0')
	return base, counter, true
}
