package site

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Bookmarks Browser</title>
    <link rel="stylesheet" href="style.css">
</head>
<body>
    <header>
        <h1>📚 Bookmarks Browser</h1>
        <p class="subtitle">Your organized bookmarks collection</p>
    </header>

    <main>
        <div class="stats-summary">
            <div class="stat-card">
                <h3>Total Bookmarks</h3>
                <p class="stat-number">{{.TotalBookmarks}}</p>
            </div>
            <div class="stat-card">
                <h3>Categories</h3>
                <p class="stat-number">{{.Categories}}</p>
            </div>
            <div class="stat-card">
                <h3>Duplicates Removed</h3>
                <p class="stat-number">{{.DuplicatesRemoved}}</p>
            </div>
        </div>

        <h2>Categories</h2>
        <div class="categories-grid">
{{- range .Cards}}
            <a href="{{.File}}" class="category-card">
                <div class="category-emoji">{{.Emoji}}</div>
                <h3>{{.Name}}</h3>
                <p class="bookmark-count">{{.Count}} bookmarks</p>
                <div class="top-domains">
{{- range .TopDomains}}
                    <span class="domain-tag">{{.}}</span>
{{- end}}
                </div>
            </a>
{{- end}}
        </div>

        <footer>
            <p>Generated on {{.GeneratedAt}}</p>
        </footer>
    </main>
</body>
</html>
`

const categoryTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Bookmarks Browser</title>
    <link rel="stylesheet" href="style.css">
</head>
<body>
    <header>
        <h1><a href="index.html">📚 Bookmarks Browser</a></h1>
        <nav>
            <a href="index.html">← Back to Categories</a>
        </nav>
    </header>

    <main>
        <h2>{{.Name}}</h2>
        <p class="category-stats">{{.Count}} bookmarks</p>

        <div class="search-box">
            <input type="text" id="search" placeholder="Search bookmarks..." onkeyup="filterBookmarks()">
        </div>

        <div class="bookmarks-list" id="bookmarks">
{{- range .Groups}}
            <div class="domain-group">
            <h3 class="domain-header"><img src="{{.Favicon}}" alt="" class="favicon"> {{.Domain}}</h3>
{{- range .Items}}
            <div class="bookmark-item" data-search="{{.Search}}">
                <div class="bookmark-header">
                    <a href="{{.URL}}" target="_blank" class="bookmark-title">{{.Title}}</a>
                    <span class="bookmark-date">{{.Date}}</span>
                </div>
{{- if .Description}}
                <p class="bookmark-description">{{.Description}}</p>
{{- end}}
                <p class="bookmark-url">{{.URL}}</p>
            </div>
{{- end}}
            </div>
{{- end}}
        </div>
    </main>

    <script>
    function filterBookmarks() {
        const searchTerm = document.getElementById('search').value.toLowerCase();
        const bookmarks = document.querySelectorAll('.bookmark-item');

        bookmarks.forEach(bookmark => {
            const searchData = bookmark.getAttribute('data-search');
            if (searchData.includes(searchTerm)) {
                bookmark.style.display = 'block';
            } else {
                bookmark.style.display = 'none';
            }
        });

        document.querySelectorAll('.domain-group').forEach(group => {
            const visible = group.querySelectorAll('.bookmark-item[style="display: block"], .bookmark-item:not([style])');
            group.style.display = visible.length > 0 ? 'block' : 'none';
        });
    }
    </script>
</body>
</html>
`

const styleSheet = `* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
    line-height: 1.6;
    color: #333;
    background-color: #f5f5f5;
}

header {
    background-color: #2c3e50;
    color: white;
    padding: 2rem 0;
    text-align: center;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

header h1 {
    font-size: 2.5rem;
    margin-bottom: 0.5rem;
}

header h1 a {
    color: white;
    text-decoration: none;
}

.subtitle {
    font-size: 1.2rem;
    opacity: 0.9;
}

nav {
    margin-top: 1rem;
}

nav a {
    color: white;
    text-decoration: none;
    padding: 0.5rem 1rem;
    background-color: rgba(255,255,255,0.1);
    border-radius: 4px;
}

nav a:hover {
    background-color: rgba(255,255,255,0.2);
}

main {
    max-width: 1200px;
    margin: 2rem auto;
    padding: 0 2rem;
}

.stats-summary {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
    gap: 1.5rem;
    margin-bottom: 3rem;
}

.stat-card {
    background: white;
    padding: 1.5rem;
    border-radius: 8px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
    text-align: center;
}

.stat-card h3 {
    color: #7f8c8d;
    font-size: 0.9rem;
    text-transform: uppercase;
    margin-bottom: 0.5rem;
}

.stat-number {
    font-size: 2.5rem;
    font-weight: bold;
    color: #2c3e50;
}

.categories-grid {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
    gap: 1.5rem;
    margin-top: 1.5rem;
}

.category-card {
    background: white;
    padding: 1.5rem;
    border-radius: 8px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
    text-decoration: none;
    color: inherit;
    transition: transform 0.2s, box-shadow 0.2s;
}

.category-card:hover {
    transform: translateY(-2px);
    box-shadow: 0 4px 12px rgba(0,0,0,0.15);
}

.category-emoji {
    font-size: 2rem;
    margin-bottom: 0.5rem;
}

.bookmark-count {
    color: #7f8c8d;
    font-size: 0.9rem;
    margin: 0.5rem 0;
}

.top-domains {
    display: flex;
    flex-wrap: wrap;
    gap: 0.4rem;
}

.domain-tag {
    background: #ecf0f1;
    color: #2c3e50;
    padding: 0.1rem 0.5rem;
    border-radius: 10px;
    font-size: 0.75rem;
}

.category-stats {
    color: #7f8c8d;
    margin-bottom: 1rem;
}

.search-box {
    margin-bottom: 2rem;
}

.search-box input {
    width: 100%;
    padding: 0.8rem 1rem;
    font-size: 1rem;
    border: 1px solid #ddd;
    border-radius: 8px;
}

.domain-group {
    background: white;
    border-radius: 8px;
    padding: 1rem 1.5rem;
    margin-bottom: 1.5rem;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

.domain-header {
    display: flex;
    align-items: center;
    gap: 0.5rem;
    padding-bottom: 0.5rem;
    border-bottom: 1px solid #eee;
    margin-bottom: 0.5rem;
    color: #2c3e50;
}

.favicon {
    width: 16px;
    height: 16px;
}

.bookmark-item {
    padding: 0.75rem 0;
    border-bottom: 1px solid #f4f4f4;
}

.bookmark-item:last-child {
    border-bottom: none;
}

.bookmark-header {
    display: flex;
    justify-content: space-between;
    align-items: baseline;
    gap: 1rem;
}

.bookmark-title {
    color: #2980b9;
    text-decoration: none;
    font-weight: 500;
}

.bookmark-title:hover {
    text-decoration: underline;
}

.bookmark-date {
    color: #95a5a6;
    font-size: 0.8rem;
    white-space: nowrap;
}

.bookmark-description {
    color: #555;
    font-size: 0.9rem;
    margin-top: 0.25rem;
}

.bookmark-url {
    color: #95a5a6;
    font-size: 0.8rem;
    margin-top: 0.25rem;
    word-break: break-all;
}

footer {
    text-align: center;
    color: #95a5a6;
    margin-top: 3rem;
    padding: 1rem;
}
`
