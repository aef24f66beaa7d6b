package report

const tpl = `
<!DOCTYPE html>
<html>
 <head>
  <meta charset="UTF-8">
  <title>Provinces Report</title>
 </head>
 <body>
  <h1>Provinces Report</h1>
  <h2>Task Information:</h2>
  {{ range .TaskInfoItems }}
  <b>{{ index . 0 }} : </b>{{ index . 1 }}<br>
  {{ end }}
  <h2>Summary:</h2>
  <table>
   <tr>
    <th>Algorithm</th>
    <th>Nodes</th>
    <th>Edges</th>
    <th>Provinces</th>
   </tr>
   <tr>
    <td>{{ .Summary.Algorithm }}</td>
    <td>{{ .Summary.Nodes }}</td>
    <td>{{ .Summary.Edges }}</td>
    <td>{{ .Summary.Provinces }}</td>
   </tr>
  </table>
  {{ if .Agreement.Header }}
  <h2>Algorithm Agreement:</h2>
  <table>
   <tr>
    {{ range .Agreement.Header }}
    <th>{{ . }}</th>
    {{ end }}
   </tr>
   {{ range .Agreement.Data }}
   <tr>
    {{ range . }}
    <td>{{ . }}</td>
    {{ end }}
   </tr>
   {{ end }}
  </table>
  {{ end }}
  <h2>Provinces:</h2>
  {{ range .Components }}
  <h3>{{ .Header }}</h3>
  <pre>{{ .Nodes }}</pre>
  {{ end }}
 </body>
</html>`
