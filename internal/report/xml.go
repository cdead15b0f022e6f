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
	"encoding/xml"
	"fmt"

	"github.com/ccmetrics/ccmetrics/internal/ucode"
)

// xmlStylesheetHref is the stylesheet cppncss consumers (e.g. the Jenkins
// cppncss plugin) expect alongside the measure data.
const xmlStylesheetHref = `type="text/xsl" href="https://raw.github.com/terryyin/lizard/master/lizard.xsl"`

type xmlLabels struct {
	XMLName xml.Name `xml:"labels"`
	Label   []string `xml:"label"`
}

type xmlItem struct {
	XMLName xml.Name `xml:"item"`
	Name    string   `xml:"name,attr"`
	Value   []string `xml:"value"`
}

// xmlLabeledValue is cppncss's <average>/<sum> element: note the
// deliberately misspelled "lable" attribute, preserved for compatibility
// with the format's existing consumers rather than corrected.
type xmlLabeledValue struct {
	XMLName xml.Name
	Label   string `xml:"lable,attr"`
	Value   string `xml:"value,attr"`
}

type xmlMeasure struct {
	XMLName xml.Name `xml:"measure"`
	Type    string   `xml:"type,attr"`
	Labels  xmlLabels
	Items   []xmlItem         `xml:"item"`
	Stats   []xmlLabeledValue `xml:",any"`
}

type xmlRoot struct {
	XMLName  xml.Name `xml:"cppncss"`
	Measures []xmlMeasure
}

// XML renders files as a cppncss-compatible report: one "Function" measure
// (one item per function, Nr/NCSS/CCN values, trailing per-file NCSS/CCN
// averages) and one "File" measure (one item per file, Nr/NCSS/CCN/Functions
// values, trailing averages and sums across every file).
func XML(files []*ucode.FileInformation, verbose bool) ([]byte, error) {
	funcMeasure := xmlMeasure{Type: "Function", Labels: xmlLabels{Label: []string{"Nr.", "NCSS", "CCN"}}}
	nr := 0
	var totalFuncNCSS, totalFuncCCN int
	for _, f := range files {
		fileFuncs, fileNCSS, fileCCN := 0, 0, 0
		for _, fn := range f.FunctionList {
			nr++
			fileFuncs++
			fileNCSS += fn.NLOC
			fileCCN += fn.CyclomaticComplexity
			name := fmt.Sprintf("%s(...) at %s:%d", fn.Name, f.Filename, fn.StartLine)
			if verbose {
				name = fmt.Sprintf("%s at %s:%d", fn.LongName, f.Filename, fn.StartLine)
			}
			funcMeasure.Items = append(funcMeasure.Items, xmlItem{
				Name:  name,
				Value: []string{fmt.Sprint(nr), fmt.Sprint(fn.NLOC), fmt.Sprint(fn.CyclomaticComplexity)},
			})
		}
		totalFuncNCSS += fileNCSS
		totalFuncCCN += fileCCN
		if fileFuncs != 0 {
			funcMeasure.Stats = append(funcMeasure.Stats,
				labeledValue("average", "NCSS", float64(fileNCSS)/float64(fileFuncs)),
				labeledValue("average", "CCN", float64(fileCCN)/float64(fileFuncs)),
			)
		}
	}

	fileMeasure := xmlMeasure{Type: "File", Labels: xmlLabels{Label: []string{"Nr.", "NCSS", "CCN", "Functions"}}}
	var fileTotalNCSS, fileTotalCCN, fileTotalFuncs int
	for i, f := range files {
		fileTotalNCSS += f.NLOC
		fileTotalCCN += f.CCN()
		fileTotalFuncs += len(f.FunctionList)
		fileMeasure.Items = append(fileMeasure.Items, xmlItem{
			Name:  f.Filename,
			Value: []string{fmt.Sprint(i + 1), fmt.Sprint(f.NLOC), fmt.Sprint(f.CCN()), fmt.Sprint(len(f.FunctionList))},
		})
	}
	if len(files) != 0 {
		n := float64(len(files))
		fileMeasure.Stats = append(fileMeasure.Stats,
			labeledValue("average", "NCSS", float64(fileTotalNCSS)/n),
			labeledValue("average", "CCN", float64(fileTotalCCN)/n),
			labeledValue("average", "Functions", float64(fileTotalFuncs)/n),
		)
	}
	fileMeasure.Stats = append(fileMeasure.Stats,
		labeledValue("sum", "NCSS", float64(fileTotalNCSS)),
		labeledValue("sum", "CCN", float64(fileTotalCCN)),
		labeledValue("sum", "Functions", float64(fileTotalFuncs)),
	)

	root := xmlRoot{Measures: []xmlMeasure{funcMeasure, fileMeasure}}
	body, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, err
	}
	header := fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>`+"\n"+`<?xml-stylesheet %s?>`+"\n", xmlStylesheetHref)
	return append([]byte(header), body...), nil
}

func labeledValue(elem, label string, v float64) xmlLabeledValue {
	return xmlLabeledValue{XMLName: xml.Name{Local: elem}, Label: label, Value: formatXMLNumber(v)}
}

// formatXMLNumber renders v the way Python's str() would for the same
// value: no trailing ".0" is stripped deliberately, since cppncss consumers
// accept floats here (the original library passes a raw division result
// straight into str()).
func formatXMLNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%v", v)
}
