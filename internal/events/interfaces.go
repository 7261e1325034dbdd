// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import "context"

type PublisherInterface interface {
	Publish(context.Context, ChangeEvent)
}

type SubscriberInterface interface {
	Subscribe(Filter) (<-chan ChangeEvent, func())
}

type SinkInterface interface {
	Forward(context.Context, ChangeEvent) error
}
