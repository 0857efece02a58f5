package html

// MaterialsReportTemplate renders the single-file materials report
const MaterialsReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Materials Report - {{.Source}}</title>
<style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
        font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
        background: #f4f6f8;
        color: #263238;
        padding: 24px;
    }
    .container { max-width: 1100px; margin: 0 auto; }
    header {
        background: #263238;
        color: #eceff1;
        border-radius: 8px;
        padding: 24px 28px;
        margin-bottom: 24px;
    }
    header h1 { font-size: 22px; font-weight: 600; }
    header .meta { margin-top: 6px; font-size: 13px; color: #b0bec5; }
    .cards {
        display: grid;
        grid-template-columns: repeat(auto-fit, minmax(160px, 1fr));
        gap: 14px;
        margin-bottom: 26px;
    }
    .card {
        background: #fff;
        border-radius: 8px;
        padding: 16px 18px;
        box-shadow: 0 1px 3px rgba(0,0,0,0.08);
    }
    .card .label { font-size: 12px; text-transform: uppercase; color: #78909c; letter-spacing: 0.5px; }
    .card .value { font-size: 26px; font-weight: 700; margin-top: 4px; }
    .card.missing .value { color: #d32f2f; }
    .card.available .value { color: #2e7d32; }
    section { margin-bottom: 30px; }
    section h2 {
        font-size: 16px;
        font-weight: 600;
        margin-bottom: 10px;
        color: #37474f;
    }
    section .hint { font-size: 12px; color: #78909c; margin-bottom: 10px; }
    table {
        width: 100%;
        border-collapse: collapse;
        background: #fff;
        border-radius: 8px;
        overflow: hidden;
        box-shadow: 0 1px 3px rgba(0,0,0,0.08);
    }
    th {
        background: #eceff1;
        text-align: left;
        font-size: 12px;
        text-transform: uppercase;
        letter-spacing: 0.5px;
        color: #546e7a;
        padding: 10px 14px;
    }
    td { padding: 9px 14px; font-size: 14px; border-top: 1px solid #eceff1; }
    td.num { text-align: right; font-variant-numeric: tabular-nums; }
    th.num { text-align: right; }
    tr:hover td { background: #f8fafb; }
    .zero { color: #b0bec5; }
    .missing-qty { color: #d32f2f; font-weight: 600; }
    .empty {
        background: #fff;
        border-radius: 8px;
        padding: 28px;
        text-align: center;
        color: #78909c;
        box-shadow: 0 1px 3px rgba(0,0,0,0.08);
    }
    footer { margin-top: 24px; font-size: 12px; color: #90a4ae; text-align: center; }
</style>
</head>
<body>
<div class="container">
    <header>
        <h1>Materials Report</h1>
        <div class="meta">
            Source: {{.Source}} ({{.Delimiter}}-delimited) &middot;
            Generated: {{.RunDate}} &middot;
            {{.RowsRead}} rows read{{if .RowsSkipped}}, {{.RowsSkipped}} skipped{{end}}
        </div>
    </header>

    <div class="cards">
        <div class="card">
            <div class="label">Materials</div>
            <div class="value">{{.Materials}}</div>
        </div>
        <div class="card">
            <div class="label">Total Units</div>
            <div class="value">{{comma .TotalUnits}}</div>
        </div>
        <div class="card missing">
            <div class="label">Missing Units</div>
            <div class="value">{{comma .MissingUnits}}</div>
        </div>
        <div class="card available">
            <div class="label">Available Units</div>
            <div class="value">{{comma .AvailableUnits}}</div>
        </div>
        <div class="card">
            <div class="label">Default Stack</div>
            <div class="value">{{.StackSize}}</div>
        </div>
    </div>

    <section>
        <h2>All Materials</h2>
        <div class="hint">Aggregated totals per material, first-seen order. Stack and chest breakdowns live in the workbook formulas.</div>
        <table>
            <thead>
                <tr>
                    <th>Material</th>
                    <th class="num">Total (units)</th>
                    <th class="num">Missing (units)</th>
                    <th class="num">Available (units)</th>
                </tr>
            </thead>
            <tbody>
                {{range .Rows}}
                <tr>
                    <td>{{.Name}}</td>
                    <td class="num{{if zero .Total}} zero{{end}}">{{comma .Total}}</td>
                    <td class="num{{if zero .Missing}} zero{{end}}">{{comma .Missing}}</td>
                    <td class="num{{if zero .Available}} zero{{end}}">{{comma .Available}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>
    </section>

    <section>
        <h2>Still Missing</h2>
        {{if .MissingRows}}
        <table>
            <thead>
                <tr>
                    <th>Material</th>
                    <th class="num">Missing (units)</th>
                </tr>
            </thead>
            <tbody>
                {{range .MissingRows}}
                <tr>
                    <td>{{.Name}}</td>
                    <td class="num missing-qty">{{comma .Missing}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>
        {{else}}
        <div class="empty">Nothing missing. Everything is already in your chests.</div>
        {{end}}
    </section>

    <footer>Generated by Forgematica Sheets</footer>
</div>
</body>
</html>
`
