// SPDX-License-Identifier: Apache-2.0

package composer

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func keys[V any](om *orderedmap.OrderedMap[string, V]) []string {
	var out []string
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
