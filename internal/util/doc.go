// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small file helpers shared by pocketcalc packages.
//
// AtomicWriteFile writes a file so that readers, including the config
// watcher, only ever see the old contents or the complete new contents:
//
//	err := util.AtomicWriteFile(path, data, 0600)
package util
