package teams

import (
	"slices"
	"sort"

	"github.com/benbjohnson/immutable"
)

// fromMap copies a payload map into a persistent map.
func fromMap[V any](m map[string]V) Map[V] {
	b := immutable.NewMapBuilder[string, V](nil)
	for k, v := range m {
		b.Set(k, v)
	}
	return b.Map()
}

// fromSliceMap copies a payload map of slices so later edits to the payload
// cannot reach the stored state.
func fromSliceMap[V any](m map[string][]V) Map[[]V] {
	b := immutable.NewMapBuilder[string, []V](nil)
	for k, v := range m {
		b.Set(k, slices.Clone(v))
	}
	return b.Map()
}

// uniqueSorted returns a sorted copy of s without duplicates. It is the
// representation used for every set of names in State.
func uniqueSorted(s []string) []string {
	out := slices.Clone(s)
	sort.Strings(out)
	return slices.Compact(out)
}

// Keys returns m's keys in sorted order.
func Keys[V any](m Map[V]) []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, m.Len())
	itr := m.Iterator()
	for !itr.Done() {
		k, _, _ := itr.Next()
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToGoMap flattens m into a plain map, mainly for comparisons and output.
func ToGoMap[V any](m Map[V]) map[string]V {
	out := make(map[string]V)
	if m == nil {
		return out
	}
	itr := m.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		out[k] = v
	}
	return out
}

// upsertChannel applies fn to the channel record for (team, conv),
// starting from an empty team map and MakeChannelInfo when either is absent.
func upsertChannel(infos Map[Map[ChannelInfo]], team, conv string, fn func(ChannelInfo) ChannelInfo) Map[Map[ChannelInfo]] {
	byConv, ok := infos.Get(team)
	if !ok {
		byConv = newMap[ChannelInfo]()
	}
	info, ok := byConv.Get(conv)
	if !ok {
		info = MakeChannelInfo()
	}
	return infos.Set(team, byConv.Set(conv, fn(info)))
}
