// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server configuration names neither an
// HTTP nor a gRPC address. Startup fails with it.
var errNoHandlersAreCreated = errors.New("no handlers are created")
