package bundle

// BundleFilter narrows each bundle's behavior for one operation before
// bundles are merged: strict mode swaps in a bundle's strict-mode view
// (or drops it), and disabling raw content swaps in its raw-content-
// disabled view.
type BundleFilter struct {
	Strict            bool
	AcceptRawContent bool
}

// Apply returns the bundles that survive this filter, each possibly
// replaced by its filtered view, in the same relative order.
func (f BundleFilter) Apply(bundles []*ExtensionBundle) []*ExtensionBundle {
	out := make([]*ExtensionBundle, 0, len(bundles))
	for _, b := range bundles {
		cur := b
		if f.Strict && cur.ForStrictMode != nil {
			strict, ok := cur.ForStrictMode()
			if !ok {
				continue
			}
			cur = strict
		}
		if !f.AcceptRawContent && cur.RawContentDisabled != nil {
			cur = cur.RawContentDisabled()
		}
		out = append(out, cur)
	}
	return out
}
