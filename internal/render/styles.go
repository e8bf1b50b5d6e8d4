package render

// styleSheet is the fixed visual styling for every rendered ebook: A4 pages
// with one-inch margins, a sans-serif body, page breaks before top-level
// headings, justified paragraphs, and framed images.
const styleSheet = `
@page {
    size: A4;
    margin: 1in;
}
body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    line-height: 1.8;
    color: #2c3e50;
    background-color: #f9f9f9;
}
h1, h2, h3, h4, h5, h6 {
    color: #34495e;
    margin-top: 1.5em;
    margin-bottom: 0.8em;
    font-weight: bold;
}
h1 {
    font-size: 2.8em;
    text-align: center;
    color: #2980b9;
    page-break-before: always;
    padding-top: 2em;
    padding-bottom: 1em;
    background-color: #ecf0f1;
    border-radius: 10px;
}
h2 {
    font-size: 2.2em;
    color: #2c3e50;
    border-bottom: 2px solid #3498db;
    padding-bottom: 5px;
    margin-top: 2em;
}
h3 {
    font-size: 1.7em;
    color: #34495e;
    margin-top: 1.5em;
}
p {
    margin-bottom: 1em;
    text-align: justify;
}
ul, ol {
    margin-left: 20px;
    margin-bottom: 1em;
}
li {
    margin-bottom: 0.5em;
}
blockquote {
    border-left: 5px solid #3498db;
    padding-left: 15px;
    margin-left: 20px;
    font-style: italic;
    color: #555;
}
code {
    font-family: monospace;
    background-color: #ecf0f1;
    padding: 2px 4px;
    border-radius: 3px;
}
pre {
    background-color: #ecf0f1;
    padding: 10px;
    border-radius: 5px;
    overflow-x: auto;
    margin-bottom: 1em;
}
img {
    max-width: 100%;
    height: auto;
    display: block;
    margin: 1.5em auto;
    border: 1px solid #ccc;
    border-radius: 5px;
    box-shadow: 0 2px 5px rgba(0,0,0,0.1);
}
`
