// Copyright 2025 EngFlow Inc. All rights reserved.
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

package report

import (
	"fmt"
	"io"
	"math"
)

const (
	cTIMEMULT  = 2.4
	cTIMEEXP   = 1.05
	cSCHEDMULT = 2.5
	cSCHEDEXP  = 0.38
	cSALARY    = 790000.0
	cOVERHEAD  = 2.40
)

// COCOMOReport is a basic-model COCOMO estimate computed from a total NLOC
// figure, scaled the same way a yearly-salary-plus-overhead organic-mode
// estimate always is: effort in person-months, schedule in months, implied
// headcount, and total cost.
type COCOMOReport struct {
	PersonMonths      float64
	ScheduleMonths    float64
	AverageDevelopers float64
	TotalCost         float64
}

// COCOMOEstimate computes the basic COCOMO I estimate for totalNLOC lines
// of code, the way a thousand-lines-of-code estimate always has: effort
// scales super-linearly with size, schedule scales sub-linearly with
// effort, and cost follows from a loaded developer-year salary.
func COCOMOEstimate(totalNLOC int) COCOMOReport {
	kloc := float64(totalNLOC) / 1000.0
	personMonths := cTIMEMULT * math.Pow(kloc, cTIMEEXP)
	scheduleMonths := cSCHEDMULT * math.Pow(personMonths, cSCHEDEXP)
	avgDevelopers := 0.0
	if scheduleMonths > 0 {
		avgDevelopers = personMonths / scheduleMonths
	}
	totalCost := personMonths * (cSALARY / 12.0) * cOVERHEAD
	return COCOMOReport{
		PersonMonths:      personMonths,
		ScheduleMonths:    scheduleMonths,
		AverageDevelopers: avgDevelopers,
		TotalCost:         totalCost,
	}
}

// PrintCOCOMO renders r the way a cost-estimate summary block is always
// shown: effort, schedule, headcount, and cost, one line each.
func PrintCOCOMO(w io.Writer, r COCOMOReport) {
	fmt.Fprintln(w, "\nEstimated Schedule, Effort (Basic COCOMO model):")
	fmt.Fprintf(w, "Estimated Development Effort: %.2f person-months\n", r.PersonMonths)
	fmt.Fprintf(w, "Estimated Schedule: %.2f months\n", r.ScheduleMonths)
	fmt.Fprintf(w, "Average Developers Required: %.2f\n", r.AverageDevelopers)
	fmt.Fprintf(w, "Total Estimated Cost: $%.0f\n", r.TotalCost)
}
