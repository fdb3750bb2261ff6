// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses a command (get, list, create or version), calls the cash card
// server through an [adapter.CashCardAdapter] and prints the result.
package client
