// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the portal API.
//
// Without arguments it prints a table of the registered portals; with a
// portal id it prints that portal's resolved configuration as JSON.
package client
