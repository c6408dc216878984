package help

const QuickstartYAML = `# og-preview Quick Start

what_it_does: |
  Compares the og:* and twitter:* tags a browser sees after scripts run
  with the tags a crawler sees in the raw HTML, validates them, and shows
  how Facebook, X, LinkedIn, Slack and WhatsApp would render the link.

commands:
  basic_inspect: |
    og-preview inspect https://example.com/post

  no_chrome: |
    og-preview inspect --no-browser https://example.com/post

  saved_dom: |
    # DOM copied from devtools (Elements > Copy outerHTML)
    og-preview inspect --live-file dom.html https://example.com/post

  html_report: |
    og-preview inspect --format html -o report.html https://example.com/post

  ci_gate: |
    og-preview inspect --format json --fail-on-error https://example.com/post

  web_ui: |
    og-preview serve --addr 127.0.0.1:8080

exit_codes:
  0: "report produced"
  1: "bad input, or validation errors with --fail-on-error"
  2: "inspection failed (browser or I/O error)"

badges:
  error: "at least one required tag is missing"
  warning: "recommended tags missing or description too long"
  pass: "All good"

js_only_tags: |
  Tags present in the live DOM but missing from the raw HTML are set by
  JavaScript. Crawlers do not run scripts, so the report evaluates
  the raw HTML instead and flags those keys.
`
