// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the area sync engine, and the periodic
// reconciliation job into a single process lifecycle.
package client
