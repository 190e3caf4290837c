package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// actionFunction is a function that takes a context and returns an error.
//
// Suitable for performing checks.
type actionFunction func(context.Context) error

// Action returns a Step which will execute the action function `f`. Errors from
// `f` are returned directly.
func Action(f actionFunction) Step {
	return actionStep{f: f}
}

// NamedAction is Action with an explicit name, for steps built from closures
// whose function names carry no meaning.
func NamedAction(name string, f actionFunction) Step {
	return actionStep{f: f, name: name}
}

type actionStep struct {
	f    actionFunction
	name string
}

func (s actionStep) run(ctx context.Context, log *logrus.Entry) error {
	return s.f(ctx)
}

func (s actionStep) Name() string {
	if s.name != "" {
		return s.name
	}
	return FriendlyName(s.f)
}

func (s actionStep) String() string {
	return fmt.Sprintf("[Action %s]", s.Name())
}

func (s actionStep) MetricsTopic() string {
	return fmt.Sprintf("action.%s", shortName(s.Name()))
}
