/*
Package surveyforms assembles bilingual political survey questionnaires on Google Forms from
spreadsheet data.

surveyforms reads four fixed-shape tables - parties by constituency, MP candidates, MLA candidates
with party tags, and caste data - from a local Excel workbook or a Google Sheets spreadsheet,
extracts and deduplicates the option lists for each Assembly Constituency (AC), and issues Google
Forms API calls to build a form with one question section per AC plus a common closing section.

surveyforms supports the following commands:

  - authorise, to authorise application access to the Google Forms and Google Sheets APIs
  - generate, to build the complete survey form from the workbook data
  - preview, to extract and assemble the survey sections without calling the Forms API
  - validate, to check the workbook structure and per-AC data availability
  - version, to display the current version
*/
package surveyforms
