package pipe

// Package pipe builds record decoders in a pipeline style: start from a
// curried constructor with Decode, then apply Required/Optional/Hardcoded/
// Custom steps. Each step consumes one constructor argument; application
// order is positional, so steps must match the constructor's argument order.
//
//	type article struct {
//		Title string
//		Tags  []string
//	}
//
//	d := pipe.Optional("tags", decpipe.SliceOf(decpipe.String()), nil,
//		pipe.Required("title", decpipe.String(),
//			pipe.Decode(func(title string) func([]string) article {
//				return func(tags []string) article { return article{Title: title, Tags: tags} }
//			})))
//
// Reading bottom-up: the constructor first, then one line per field in
// argument order. Resolve adds a second pass over the same input for
// cross-field validation once the structural decode has succeeded.
