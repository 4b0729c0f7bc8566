// Package stream provides the push-based value streams that drive reactive
// bindings in the mounting engine.
//
// The central type is Source[T], a live value holder:
//
//	name := stream.NewSource("anonymous")
//	name.Subscribe(sc, func(v string) { fmt.Println("now:", v) })
//	name.Set("ada") // subscriber sees "ada"
//	name.Set("ada") // equal value, no delivery
//
// Subscription lifetime is a scope: closing the scope cancels the
// subscription. Values of one subscription are always delivered in emission
// order, queued when the consumer is still busy with the previous one.
//
// Adapters build derived streams: Of replays a fixed sequence, FromChannel
// bridges a channel, Map and Filter transform, and Merge fans several
// streams into one in attachment order.
package stream
