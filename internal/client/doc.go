// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the importer runtime.
//
// It reads a file of server payloads and hands it to the data operator
// entry point that matches the configured table, the way the mobile client
// does after a fetch.
package client
