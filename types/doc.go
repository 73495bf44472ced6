/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package types defines the values shared by the query dialects: the Mode
// that selects a dialect, the Result an analysis produces and the typed
// Error it fails with.
//
// Results carry exactly one payload selected by Kind. They marshal to JSON
// and YAML in their plain shape, with NaN and infinities encoded as null.
package types
