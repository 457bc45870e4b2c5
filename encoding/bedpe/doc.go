// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*Package bedpe reads and writes BEDPE interval-pair files.

A BEDPE file is headerless and tab-delimited, with ten columns per line:

  chrom1 start1 end1 chrom2 start2 end2 name score strand1 strand2

Files are loaded in full into a column-oriented Table.  Each column's scalar
kind (integer, float or text) is inferred from the first few records; later
values which do not fit the inferred kind are kept verbatim as text instead of
failing the load.  Coordinates are not validated.
*/
package bedpe
