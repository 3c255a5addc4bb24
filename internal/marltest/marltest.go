// Copyright 2026 The Marl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package marltest holds knobs shared by tests across the repository.
package marltest

import "os"

// UpdateGoldenFiles indicates whether tests should update their golden
// files instead of comparing against them. It is set by MARL_UPDATE=1.
var UpdateGoldenFiles = os.Getenv("MARL_UPDATE") != ""
