// Copyright (c) 2021, 2022 Mark Delany. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// This file exists so that "go doc github.com/markdingo/sysaid" displays something
// useful.

/*

Package sysaid is a pair of small process-local debugging aids and a command which
exercises them.

Package log provides a level-filtered line logger with assertion reporting. Package osutil
wraps environment variable access and file stat() calls so that failures come back as
typed errors. The two packages are independent of each other.

The sysaid command, in cmd/sysaid, prints, sets and removes environment variables and
reports the existence and size of files.

Project site: https://github.com/markdingo/sysaid

*/
package sysaid
